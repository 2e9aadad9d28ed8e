package cli

import (
	"encoding/json"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/ugent-library/sso-login/loginserver"
)

func loadProviders() ([]*loginserver.Provider, error) {
	var reader io.Reader
	var providers []*loginserver.Provider
	if config.Providers != "" {
		reader = strings.NewReader(config.Providers)
	} else if config.ProvidersPath != "" {
		r, err := os.Open(config.ProvidersPath)
		if err != nil {
			return nil, err
		}
		defer r.Close()
		reader = r
	} else {
		return nil, nil
	}
	dec := json.NewDecoder(reader)
	for {
		err := dec.Decode(&providers)
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, err
		}
	}
	return providers, nil
}
