// Package nls holds the display strings of the login page, keyed by locale.
package nls

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

const Root = "root"

// Table maps string keys to display text.
type Table map[string]string

var rootTable = Table{
	"SIGNIN":                             "Welcome, Please login",
	"NEEDREGISTER":                       "Register",
	"ENTEREMAIL":                         "User Name",
	"PASSWORD":                           "Password",
	"REMEMBERME":                         "Remember Me",
	"FORGOTPWD":                          "Forgot password?",
	"LOGIN":                              "Sign in",
	"SIGNINFACEBOOK":                     "Facebook",
	"SIGNINTWITTER":                      "Twitter",
	"SIGNINGOOGLE":                       "Google",
	"SIGNINLINKEDIN":                     "Linkedin",
	"COPYRIGHT":                          "Copyright © OneTeam. All Rights Reserved.",
	"REGISTER":                           "Register",
	"FIRSTNAME":                          "First Name",
	"LASTNAME":                           "Last Name",
	"EMAILADDRESS":                       "Email Address",
	"CONFIRMPWD":                         "Confirm Password",
	"ACCOUNTEXISTS":                      "Already have an Account?",
	"RESETPWD":                           "Reset Password",
	"ENTRY_EXISTS":                       "User found.",
	"USER_ENTRY_PASSWORD_REQUIRES_RESET": "Requires Password Reset.",
	"INVALID_CREDENTIALS":                "Invalid Credentials.",
	"USERNAME_REQUIRED":                  "Username is required",
	"PASSWORD_REQUIRED":                  "Password is required",
}

// Bundle is a set of locale tables. Locales without their own table, like
// en-us, resolve to root.
type Bundle struct {
	mu      sync.RWMutex
	tables  map[string]Table
	tags    []language.Tag
	locales []string
	matcher language.Matcher
}

func New() *Bundle {
	b := &Bundle{tables: map[string]Table{}}
	b.Add(Root, rootTable)
	b.Add("en-us", nil)
	return b
}

// Add merges entries into a locale table, creating it when needed.
func (b *Bundle) Add(locale string, entries Table) {
	locale = normalize(locale)

	b.mu.Lock()
	defer b.mu.Unlock()

	t, ok := b.tables[locale]
	if !ok {
		t = Table{}
		b.tables[locale] = t
		if locale != Root {
			if tag, err := language.Parse(locale); err == nil {
				b.tags = append(b.tags, tag)
				b.locales = append(b.locales, locale)
			}
		}
		b.matcher = nil
	}
	for k, v := range entries {
		t[k] = v
	}
}

// LoadYAML merges a file of the form
//
//	nl:
//	  SIGNIN: Welkom, gelieve aan te melden
func (b *Bundle) LoadYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var tables map[string]Table
	if err := yaml.Unmarshal(data, &tables); err != nil {
		return fmt.Errorf("nls: unable to parse %s: %w", path, err)
	}
	for locale, t := range tables {
		b.Add(locale, t)
	}
	return nil
}

// Match picks the best available locale for an Accept-Language header,
// or Root.
func (b *Bundle) Match(acceptLanguage string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Root
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.tags) == 0 {
		return Root
	}
	if b.matcher == nil {
		b.matcher = language.NewMatcher(b.tags)
	}
	_, i, conf := b.matcher.Match(tags...)
	if conf == language.No {
		return Root
	}
	return b.locales[i]
}

// Lookup returns the text for key in locale, falling back to root and
// then to the key itself.
func (b *Bundle) Lookup(locale, key string) string {
	if text, ok := b.Find(locale, key); ok {
		return text
	}
	return key
}

// Find is Lookup without the fallback to the key.
func (b *Bundle) Find(locale, key string) (string, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if t, ok := b.tables[normalize(locale)]; ok {
		if text, ok := t[key]; ok {
			return text, true
		}
	}
	text, ok := b.tables[Root][key]
	return text, ok
}

// Table returns the resolved table of a locale: root entries overlaid with
// the locale's own.
func (b *Bundle) Table(locale string) Table {
	b.mu.RLock()
	defer b.mu.RUnlock()
	resolved := Table{}
	for k, v := range b.tables[Root] {
		resolved[k] = v
	}
	for k, v := range b.tables[normalize(locale)] {
		resolved[k] = v
	}
	return resolved
}

func normalize(locale string) string {
	return strings.ToLower(strings.ReplaceAll(locale, "_", "-"))
}
