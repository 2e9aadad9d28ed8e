package loginserver

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"

	"github.com/ugent-library/sso-login/loginview"
	"github.com/ugent-library/sso-login/nls"
)

const (
	sessionFlowKey = "flow"
	flashInvalid   = "invalid"
	flashUsername  = "username"
)

type Config struct {
	SessionCookieName  string
	SessionSecret      string
	URIBase            string
	UpstreamURL        string
	ExpiresIn          time.Duration
	DefaultBrandingURL string
	Logger             *zap.SugaredLogger
	Bundle             *nls.Bundle
	Source             ScaffoldSource
	Store              *Store
}

type Server struct {
	logger             *zap.SugaredLogger
	sessionCookieName  string
	sessionStore       *sessions.CookieStore
	loginPath          string
	upstream           *url.URL
	defaultBrandingURL string
	bundle             *nls.Bundle
	source             ScaffoldSource
	store              *Store
}

func NewServer(config Config) (*Server, error) {
	uriBase, err := url.Parse(config.URIBase)
	if err != nil {
		return nil, err
	}
	upstream, err := url.Parse(config.UpstreamURL)
	if err != nil {
		return nil, err
	}
	if !upstream.IsAbs() {
		return nil, errors.New("upstream url must be absolute")
	}

	expiresIn := config.ExpiresIn
	if expiresIn <= 0 {
		expiresIn = time.Hour
	}

	sessionStore := sessions.NewCookieStore([]byte(config.SessionSecret))
	sessionStore.MaxAge(int(expiresIn.Seconds()))
	sessionStore.Options.Path = uriBase.Path + "/login"
	sessionStore.Options.HttpOnly = true
	sessionStore.Options.Secure = uriBase.Scheme == "https"
	sessionStore.Options.SameSite = http.SameSiteLaxMode

	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	bundle := config.Bundle
	if bundle == nil {
		bundle = nls.New()
	}
	source := config.Source
	if source == nil {
		source = &MockScaffoldSource{}
	}
	store := config.Store
	if store == nil {
		if store, err = NewStore("", 100, expiresIn); err != nil {
			return nil, err
		}
	}

	return &Server{
		logger:             logger,
		sessionCookieName:  config.SessionCookieName,
		sessionStore:       sessionStore,
		loginPath:          uriBase.Path + "/login",
		upstream:           upstream,
		defaultBrandingURL: config.DefaultBrandingURL,
		bundle:             bundle,
		source:             source,
		store:              store,
	}, nil
}

func (s *Server) Routes(r chi.Router) {
	r.Get("/login", s.LoginGet)
	r.Post("/login", s.LoginPost)
	r.Get("/nls/login.json", s.NLS)
	r.Get("/clear", s.Clear)
}

func (s *Server) locale(r *http.Request) string {
	return s.bundle.Match(r.Header.Get("Accept-Language"))
}

func (s *Server) messages(locale string) loginview.Messages {
	return loginview.Messages{
		UsernameRequired: s.bundle.Lookup(locale, "USERNAME_REQUIRED"),
		PasswordRequired: s.bundle.Lookup(locale, "PASSWORD_REQUIRED"),
	}
}

func (s *Server) formAction(r *http.Request) string {
	if r.URL.RawQuery == "" {
		return s.loginPath
	}
	return s.loginPath + "?" + r.URL.RawQuery
}

// flowScaffold returns the scaffold of the session's login flow, starting a
// new flow when there is none or it expired.
func (s *Server) flowScaffold(r *http.Request, session *sessions.Session) (*Scaffold, error) {
	if flowID, ok := session.Values[sessionFlowKey].(string); ok {
		sc, err := s.store.Get(flowID)
		if err == nil {
			return sc, nil
		} else if !errors.Is(err, ErrNotFound) {
			return nil, err
		}
	}

	sc, err := s.source.NewScaffold(r)
	if err != nil {
		return nil, err
	}
	if err := s.store.Set(sc); err != nil {
		return nil, err
	}
	session.Values[sessionFlowKey] = sc.FlowID
	return sc, nil
}

// loginErrors turns error codes sent back by the identity provider into
// display text. Codes without a localized message are logged and dropped,
// the query string never reaches the page as text.
func (s *Server) loginErrors(r *http.Request, locale string) []string {
	var msgs []string
	for _, code := range r.URL.Query()["error"] {
		if code == "" {
			continue
		}
		text, ok := s.bundle.Find(locale, code)
		if !ok {
			s.logger.Warnf("ignoring unknown login error code %q", code)
			continue
		}
		msgs = append(msgs, text)
	}
	return msgs
}

func (s *Server) LoginGet(w http.ResponseWriter, r *http.Request) {
	session, _ := s.sessionStore.Get(r, s.sessionCookieName)
	locale := s.locale(r)
	messages := s.messages(locale)

	sc, err := s.flowScaffold(r, session)
	if err != nil {
		s.logger.Errorf("unable to start login flow: %s", err)
		http.Error(w, "unexpected error", http.StatusInternalServerError)
		return
	}

	// empty credentials fail every field, which gives the localized messages
	required := loginview.Validate(loginview.Credentials{}, messages)
	invalid := loginview.Validation{}
	for _, f := range session.Flashes(flashInvalid) {
		field, _ := f.(string)
		if msg, ok := required[loginview.Field(field)]; ok {
			invalid[loginview.Field(field)] = msg
		}
	}
	var username string
	for _, f := range session.Flashes(flashUsername) {
		username, _ = f.(string)
	}

	if err := s.sessionStore.Save(r, w, session); err != nil {
		s.logger.Errorf("unable to save session: %s", err)
		http.Error(w, "unexpected error", http.StatusInternalServerError)
		return
	}

	lang := locale
	if lang == nls.Root {
		lang = "en"
	}

	var buf bytes.Buffer
	if err := templateLogin.Execute(&buf, templateLoginParams{
		Lang:       lang,
		Text:       s.bundle.Table(locale),
		FormAction: s.formAction(r),
		Scaffold:   sc,
		Errors:     s.loginErrors(r, locale),
		Username:   username,
	}); err != nil {
		s.logger.Errorf("unable to render login page: %s", err)
		http.Error(w, "unexpected error", http.StatusInternalServerError)
		return
	}

	dom, err := loginview.ParseDOM(&buf)
	if err != nil {
		s.logger.Errorf("unable to parse login page: %s", err)
		http.Error(w, "unexpected error", http.StatusInternalServerError)
		return
	}

	controller := loginview.NewController(loginview.Config{
		Messages:           messages,
		DefaultBrandingURL: s.defaultBrandingURL,
	})
	if err := controller.Show(dom, r.URL.RawQuery); err != nil {
		brandingFailures.Inc()
		s.logger.Warnf("unable to resolve tenant branding: %s", err)
	}
	if !invalid.Valid() {
		loginview.Apply(dom, loginview.FieldEffects(invalid))
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if err := dom.Render(w); err != nil {
		s.logger.Errorf("unable to write login page: %s", err)
		return
	}
	pageRenders.Inc()
}

// LoginPost checks the required fields again for submissions that did not
// pass through the page script. Valid submissions are handed to the
// upstream identity provider with a 307 so the browser posts the same form
// there.
func (s *Server) LoginPost(w http.ResponseWriter, r *http.Request) {
	session, _ := s.sessionStore.Get(r, s.sessionCookieName)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "unable to parse form", http.StatusBadRequest)
		return
	}

	creds := loginview.Credentials{
		Username: r.PostForm.Get("username"),
		Password: r.PostForm.Get("password"),
	}
	v := loginview.Validate(creds, s.messages(s.locale(r)))

	if !v.Valid() {
		for _, f := range v.Failed() {
			session.AddFlash(string(f), flashInvalid)
			validationFailures.WithLabelValues(string(f)).Inc()
		}
		session.AddFlash(creds.Username, flashUsername)
		if err := s.sessionStore.Save(r, w, session); err != nil {
			s.logger.Errorf("unable to save session: %s", err)
			http.Error(w, "unexpected error", http.StatusInternalServerError)
			return
		}
		submissions.WithLabelValues("invalid").Inc()
		http.Redirect(w, r, s.formAction(r), http.StatusSeeOther)
		return
	}

	if flowID, ok := session.Values[sessionFlowKey].(string); ok {
		s.store.Remove(flowID)
		delete(session.Values, sessionFlowKey)
		if err := s.sessionStore.Save(r, w, session); err != nil {
			s.logger.Errorf("unable to save session: %s", err)
			http.Error(w, "unexpected error", http.StatusInternalServerError)
			return
		}
	}

	redirectTo := *s.upstream
	if r.URL.RawQuery != "" {
		if redirectTo.RawQuery != "" {
			redirectTo.RawQuery += "&" + r.URL.RawQuery
		} else {
			redirectTo.RawQuery = r.URL.RawQuery
		}
	}
	submissions.WithLabelValues("forwarded").Inc()
	http.Redirect(w, r, redirectTo.String(), http.StatusTemporaryRedirect)
}

func (s *Server) NLS(w http.ResponseWriter, r *http.Request) {
	locale := r.URL.Query().Get("locale")
	if locale == "" {
		locale = s.locale(r)
	}
	data, _ := json.Marshal(struct {
		Locale   string    `json:"locale"`
		Messages nls.Table `json:"messages"`
	}{
		Locale:   locale,
		Messages: s.bundle.Table(locale),
	})
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (s *Server) Clear(w http.ResponseWriter, r *http.Request) {
	s.store.Purge()
	w.Header().Add("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
