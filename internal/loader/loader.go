// Package loader reads one configured input — a local file or an HTTP(S)
// URL — and decodes it into a document.Document. It is the only package
// that touches net/http, and one of the few outside the engine (with
// config, internal/cliutil and cmd/openapi-merge) that touch os: every pure
// engine package (document, pathtransform, namer, rewriter, merge)
// consumes already-parsed documents.
//
// Format sniffing (extension first, content sniffing as a fallback for
// extension-less URLs) and the local-file/URL split are grounded on
// rperez95/openapi-merge's Merger.loadSpec/fetchFromURL (found in the
// retrieved corpus).
package loader

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v4"

	openapimerge "github.com/erraggy/openapi-merge"
	"github.com/erraggy/openapi-merge/config"
	"github.com/erraggy/openapi-merge/document"
	"github.com/erraggy/openapi-merge/merrors"
)

// Load reads and decodes one configured input, returning its parsed
// document. The returned error is always an *merrors.InputUnreachableError
// (the source could not be read) or *merrors.InputUnparseableError (it was
// read but did not decode as YAML/JSON OpenAPI).
func Load(ctx context.Context, in config.InputConfig) (*document.Document, error) {
	source := in.InputFile
	var (
		data []byte
		err  error
		ext  string
	)

	switch {
	case in.InputURL != "":
		source = in.InputURL
		data, ext, err = fetch(ctx, in.InputURL)
	default:
		data, err = os.ReadFile(in.InputFile)
		ext = strings.ToLower(filepath.Ext(in.InputFile))
	}
	if err != nil {
		return nil, &merrors.InputUnreachableError{Input: source, Cause: err}
	}

	doc, err := decode(data, ext)
	if err != nil {
		return nil, &merrors.InputUnparseableError{Input: source, Cause: err}
	}
	return doc, nil
}

func fetch(ctx context.Context, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", openapimerge.UserAgent())

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("fetching %s: status %s", url, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("reading response body from %s: %w", url, err)
	}

	return data, strings.ToLower(filepath.Ext(url)), nil
}

// decode unmarshals data as YAML or JSON based on ext, falling back to
// content sniffing (the first non-whitespace byte) when ext names neither
// format — the shape an extension-less URL leaves loader in.
func decode(data []byte, ext string) (*document.Document, error) {
	isJSON := ext == ".json"
	isYAML := ext == ".yaml" || ext == ".yml"
	if !isJSON && !isYAML {
		isJSON = looksLikeJSON(data)
		isYAML = !isJSON
	}

	doc := &document.Document{}
	var err error
	if isJSON {
		err = json.Unmarshal(data, doc)
	} else {
		err = yaml.Unmarshal(data, doc)
	}
	if err != nil {
		return nil, err
	}
	if doc.OpenAPI == "" {
		return nil, fmt.Errorf("missing openapi field")
	}
	return doc, nil
}

func looksLikeJSON(data []byte) bool {
	trimmed := strings.TrimLeft(string(data), " \t\r\n")
	return strings.HasPrefix(trimmed, "{")
}
