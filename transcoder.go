// Package testharness loads a JSON request, turns it into a greeting response and reports both documents.
package testharness

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"unicode/utf8"
)

// Transcoder runs the load, parse, build, serialize and report pipeline.
type Transcoder struct {
	opts Options
}

// NewTranscoder constructs a transcoder with the given options.
func NewTranscoder(opts ...Option) (*Transcoder, error) {
	resolved, err := resolveOptions(opts)
	if err != nil {
		return nil, fmt.Errorf("resolve options: %w", err)
	}

	return &Transcoder{opts: resolved}, nil
}

// Run executes the pipeline once for the request file at path.
// The request line is reported before parsing, so a parse failure leaves it in place.
func (t *Transcoder) Run(ctx context.Context, path string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	if path == "" {
		path = DefaultRequestPath
	}

	log := t.opts.logger.With().Str("path", path).Logger()

	requestJSON, err := LoadInput(path)
	if err != nil {
		return Result{}, err
	}

	log.Debug().Int("bytes", len(requestJSON)).Msg("request loaded")

	if err := writeRequestLine(t.opts.stdout, requestJSON); err != nil {
		return Result{}, err
	}

	req, err := ParseRequest(requestJSON)
	if err != nil {
		return Result{RequestJSON: requestJSON}, err
	}

	resp := BuildResponse(req)
	log.Debug().Str("class", resp.Class).Msg("response built")

	responseJSON, err := SerializeResponse(resp)
	if err != nil {
		return Result{RequestJSON: requestJSON, Response: resp}, err
	}

	if err := writeResponseLine(t.opts.stdout, responseJSON); err != nil {
		return Result{RequestJSON: requestJSON, Response: resp, ResponseJSON: responseJSON}, err
	}

	log.Debug().Int("bytes", len(responseJSON)).Msg("response reported")

	return Result{
		RequestJSON:  requestJSON,
		Response:     resp,
		ResponseJSON: responseJSON,
	}, nil
}

// LoadInput reads the whole file at path as UTF-8 text.
func LoadInput(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrIO, path, err)
	}

	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %s: stream did not contain valid UTF-8", ErrIO, path)
	}

	return string(data), nil
}

// ParseRequest decodes text into a Request.
// Only the exact "input" key is read; other keys, including case variants, are ignored.
func ParseRequest(text string) (Request, error) {
	data := []byte(text)

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return Request{}, fmt.Errorf("%w: %w", ErrParse, err)
	}

	n, err := countTopLevelKey(data, requestInputKey)
	if err != nil {
		return Request{}, fmt.Errorf("%w: %w", ErrParse, err)
	}

	if n > 1 {
		return Request{}, fmt.Errorf("%w: duplicate field `%s`", ErrParse, requestInputKey)
	}

	// null and {} decode cleanly, the schema rejects them.
	if err := ValidateRequest(data); err != nil {
		return Request{}, err
	}

	var req Request
	if err := json.Unmarshal(fields[requestInputKey], &req.Input); err != nil {
		return Request{}, fmt.Errorf("%w: %w", ErrParse, err)
	}

	return req, nil
}

// countTopLevelKey reports how often key appears as a member name of the top-level object in data.
func countTopLevelKey(data []byte, key string) (int, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return 0, err
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return 0, nil
	}

	n := 0

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return 0, err
		}

		if name, ok := tok.(string); ok && name == key {
			n++
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return 0, err
		}
	}

	return n, nil
}

// BuildResponse derives the greeting response for req.
func BuildResponse(req Request) Response {
	return Response{
		Class:  ResponseClass,
		Output: GreetingPrefix + req.Input,
	}
}

// SerializeResponse encodes resp as compact JSON without HTML escaping.
func SerializeResponse(resp Response) (string, error) {
	var b bytes.Buffer

	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(resp); err != nil {
		return "", fmt.Errorf("%w: %w", ErrSerialize, err)
	}

	data := unescapeLineSeparators(bytes.TrimSuffix(b.Bytes(), []byte("\n")))
	if err := ValidateResponse(data); err != nil {
		return "", err
	}

	return string(data), nil
}

// Report writes the raw request text and the debug-quoted response text to w.
func Report(w io.Writer, requestJSON, responseJSON string) error {
	if err := writeRequestLine(w, requestJSON); err != nil {
		return err
	}

	return writeResponseLine(w, responseJSON)
}

func writeRequestLine(w io.Writer, requestJSON string) error {
	if _, err := fmt.Fprintf(w, "%s%s\n", requestLabel, requestJSON); err != nil {
		return fmt.Errorf("write request line: %w", err)
	}

	return nil
}

func writeResponseLine(w io.Writer, responseJSON string) error {
	if _, err := fmt.Fprintf(w, "%s%s\n", responseLabel, debugQuote(responseJSON)); err != nil {
		return fmt.Errorf("write response line: %w", err)
	}

	return nil
}
