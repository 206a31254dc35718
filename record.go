package drugstock

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
)

// Record is the single document emitted per invocation. It holds either a
// product or an error message, never both.
type Record struct {
	Product *Product
	Err     string
}

// NewRecord returns a success record for p.
func NewRecord(p *Product) Record {
	return Record{Product: p}
}

// ErrorRecord converts err into an error record. Fetch failures keep their
// full message; application errors use their human-readable message.
func ErrorRecord(err error) Record {
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return Record{Err: fetchErr.Error()}
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return Record{Err: appErr.Message}
	}
	return Record{Err: err.Error()}
}

// OK reports whether the record carries a product.
func (r Record) OK() bool {
	return r.Product != nil
}

type errorDocument struct {
	Error string `json:"error"`
}

func (r Record) document() any {
	if r.Product == nil {
		return errorDocument{Error: r.Err}
	}
	return r.Product
}

// MarshalJSON encodes the success or error shape.
func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.document())
}

// EncodeRecord returns the indented JSON document for rec, with a trailing
// newline. HTML characters and non-ASCII text are written unescaped.
func EncodeRecord(rec Record) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rec.document()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteRecord writes the JSON document for rec to w.
func WriteRecord(w io.Writer, rec Record) error {
	b, err := EncodeRecord(rec)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}
