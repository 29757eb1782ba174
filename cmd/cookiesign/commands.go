package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dmitrymomot/cookiekit/pkg/cookie"
	"github.com/dmitrymomot/cookiekit/pkg/jar"
	"github.com/dmitrymomot/cookiekit/pkg/logger"
	rdb "github.com/dmitrymomot/cookiekit/pkg/redis"
	"github.com/dmitrymomot/cookiekit/pkg/signature"
)

func (a *app) sign(args []string) error {
	fs := flag.NewFlagSet("sign", flag.ContinueOnError)
	name := fs.String("name", "", "cookie name (required)")
	value := fs.String("value", "", "cookie value")
	purpose := fs.String("purpose", "", "derive the signing key for this purpose")
	unsigned := fs.Bool("unsigned", false, "do not sign the value")
	path := fs.String("path", "", "Path attribute")
	domain := fs.String("domain", "", "Domain attribute")
	maxAge := fs.Int("max-age", 0, "Max-Age attribute in seconds")
	sameSite := fs.String("same-site", "", "SameSite attribute: strict, lax or none")
	secure := fs.Bool("secure", false, "Secure attribute")
	httpOnly := fs.Bool("http-only", false, "HttpOnly attribute")
	partitioned := fs.Bool("partitioned", false, "Partitioned attribute")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *name == "" {
		return fmt.Errorf("%w: -name is required", errUsage)
	}

	opts, err := a.cookies.Options()
	if err != nil {
		return err
	}

	var flagErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "path":
			opts = append(opts, cookie.WithPath(*path))
		case "domain":
			opts = append(opts, cookie.WithDomain(*domain))
		case "max-age":
			opts = append(opts, cookie.WithMaxAge(*maxAge))
		case "same-site":
			s, err := cookie.ParseSameSite(*sameSite)
			if err != nil {
				flagErr = err
				return
			}
			opts = append(opts, cookie.WithSameSite(s))
		case "secure":
			opts = append(opts, cookie.WithSecure(*secure))
		case "http-only":
			opts = append(opts, cookie.WithHTTPOnly(*httpOnly))
		case "partitioned":
			opts = append(opts, cookie.WithPartitioned(*partitioned))
		}
	})
	if flagErr != nil {
		return flagErr
	}

	if *unsigned {
		_, err = fmt.Fprintln(a.out, cookie.Stringify(*name, *value, opts...))
		return err
	}

	secrets, err := a.secrets(*purpose)
	if err != nil {
		return err
	}
	line, err := cookie.StringifySigned(*name, *value, secrets[0], opts...)
	if err != nil {
		return err
	}
	a.log.Debug("cookie signed", logger.CookieName(*name))
	_, err = fmt.Fprintln(a.out, line)
	return err
}

func (a *app) verify(args []string) error {
	fs := flag.NewFlagSet("verify", flag.ContinueOnError)
	name := fs.String("name", "", "cookie name (required)")
	text := fs.String("cookie", "", "Cookie header value, read from stdin when empty")
	purpose := fs.String("purpose", "", "derive the verification keys for this purpose")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *name == "" {
		return fmt.Errorf("%w: -name is required", errUsage)
	}

	secrets, err := a.secrets(*purpose)
	if err != nil {
		return err
	}
	header, err := a.input(*text)
	if err != nil {
		return err
	}

	for i, secret := range secrets {
		if v, ok := cookie.GetSigned(*name, secret, header); ok {
			a.log.Debug("cookie verified", logger.CookieName(*name), "key_index", i)
			_, err = fmt.Fprintln(a.out, v)
			return err
		}
	}
	a.log.Debug("cookie rejected", logger.CookieName(*name))
	return errInvalid
}

func (a *app) parse(args []string) error {
	fs := flag.NewFlagSet("parse", flag.ContinueOnError)
	text := fs.String("cookie", "", "Cookie header value, read from stdin when empty")
	names := fs.Bool("names", false, "print names in order of appearance")
	if err := fs.Parse(args); err != nil {
		return err
	}

	header, err := a.input(*text)
	if err != nil {
		return err
	}

	if *names {
		for _, n := range cookie.Names(header) {
			if _, err := fmt.Fprintln(a.out, n); err != nil {
				return err
			}
		}
		return nil
	}

	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(cookie.Parse(header))
}

func (a *app) jar(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("jar", flag.ContinueOnError)
	id := fs.String("id", "", "jar ID, a new one is created when empty")
	set := fs.String("set", "", "Set-Cookie string to apply")
	list := fs.Bool("list", false, "list jar IDs")
	del := fs.Bool("delete", false, "delete the jar")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := rdb.Connect(ctx, a.redis)
	if err != nil {
		return err
	}
	defer client.Close()

	jars := jar.NewRedis(client,
		jar.WithKeyPrefix(a.redis.JarKeyPrefix),
		jar.WithTTL(a.redis.JarTTL),
		jar.WithLogger(a.log),
	)

	if *list {
		ids, err := jars.IDs(ctx)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(a.out, strings.Join(ids, "\n"))
		return err
	}

	if *id == "" {
		if *del {
			return fmt.Errorf("%w: -delete needs -id", errUsage)
		}
		*id = jar.NewID()
		a.log.Info("created cookie jar", logger.JarID(*id))
	}

	if *del {
		return jars.Delete(ctx, *id)
	}

	if *set != "" {
		if err := jars.SetCookie(ctx, *id, *set); err != nil {
			return err
		}
	}

	text, err := jars.Cookie(ctx, *id)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, text)
	return err
}

// secrets returns the configured secrets, primary first, derived for purpose
// when it is not empty.
func (a *app) secrets(purpose string) ([][]byte, error) {
	list := a.cookies.SecretList()
	if len(list) == 0 {
		return nil, cookie.ErrNoSecret
	}

	secrets := make([][]byte, 0, len(list))
	for _, s := range list {
		if purpose == "" {
			secrets = append(secrets, []byte(s))
			continue
		}
		key, err := signature.DeriveSecret(s, purpose)
		if err != nil {
			return nil, err
		}
		secrets = append(secrets, key)
	}
	return secrets, nil
}

func (a *app) input(text string) (string, error) {
	if text != "" {
		return text, nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}
