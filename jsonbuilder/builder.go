// Package jsonbuilder writes hand-formatted JSON text one line at a time.
//
// A Builder is a single growable buffer plus the current indentation depth.
// Every value method indents first and never writes a separator; callers
// place commas and line breaks with NewLine:
//
//	s := jsonbuilder.New().
//		Start().
//		String("name", "ripple").NewLine(true).
//		Int("max_age", 40).NewLine(false).
//		CloseObject().
//		Build()
package jsonbuilder

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

type Builder struct {
	buf   strings.Builder
	depth int
}

func New() *Builder {
	return &Builder{}
}

// Start opens the top-level object.
func (b *Builder) Start() *Builder {
	b.buf.WriteString("{\n")
	b.depth++
	return b
}

// Value writes a bare string element, as used inside arrays.
func (b *Builder) Value(value string) *Builder {
	b.indent()
	b.quote(value)
	return b
}

func (b *Builder) String(key, value string) *Builder {
	b.key(key)
	b.quote(value)
	return b
}

func (b *Builder) Int(key string, value int) *Builder {
	b.key(key)
	b.buf.WriteString(strconv.Itoa(value))
	return b
}

func (b *Builder) Bool(key string, value bool) *Builder {
	b.key(key)
	b.buf.WriteString(strconv.FormatBool(value))
	return b
}

// Float32 and Float64 produce the same text for the same value.
func (b *Builder) Float32(key string, value float32) *Builder {
	b.key(key)
	b.float(float64(value), 32)
	return b
}

func (b *Builder) Float64(key string, value float64) *Builder {
	b.key(key)
	b.float(value, 64)
	return b
}

// StartObject opens a nested object under key.
func (b *Builder) StartObject(key string) *Builder {
	b.key(key)
	b.buf.WriteString("{\n")
	b.depth++
	return b
}

// CloseObject closes the innermost object, including the top-level one.
func (b *Builder) CloseObject() *Builder {
	b.depth--
	b.indent()
	b.buf.WriteByte('}')
	return b
}

// StartArray opens an array under key. The caller decides whether the first
// element starts on a new line.
func (b *Builder) StartArray(key string) *Builder {
	b.key(key)
	b.buf.WriteByte('[')
	b.depth++
	return b
}

func (b *Builder) CloseArray() *Builder {
	b.depth--
	b.indent()
	b.buf.WriteByte(']')
	return b
}

// Array writes a complete string array, one element per line.
func (b *Builder) Array(key string, values ...string) *Builder {
	b.StartArray(key).NewLine(false)
	for i, v := range values {
		b.Value(v)
		if i < len(values)-1 {
			b.NewLine(true)
		}
	}
	b.NewLine(false)
	return b.CloseArray()
}

// NewLine ends the current line, optionally with a trailing comma.
func (b *Builder) NewLine(comma bool) *Builder {
	if comma {
		b.buf.WriteByte(',')
	}
	b.buf.WriteByte('\n')
	return b
}

// Build returns the text written so far. The builder stays usable.
func (b *Builder) Build() string {
	return b.buf.String()
}

// Depth reports the current indentation depth; zero once every opened
// object and array has been closed.
func (b *Builder) Depth() int {
	return b.depth
}

func (b *Builder) indent() {
	for i := 0; i < b.depth; i++ {
		b.buf.WriteByte('\t')
	}
}

func (b *Builder) key(key string) {
	b.indent()
	b.quote(key)
	b.buf.WriteString(": ")
}

func (b *Builder) quote(s string) {
	var out bytes.Buffer
	enc := json.NewEncoder(&out)
	enc.SetEscapeHTML(false)
	// Encoding a string cannot fail.
	_ = enc.Encode(s)
	b.buf.Write(bytes.TrimSuffix(out.Bytes(), []byte{'\n'}))
}

func (b *Builder) float(v float64, bits int) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		b.buf.WriteString("null")
		return
	}
	b.buf.WriteString(strconv.FormatFloat(v, 'g', -1, bits))
}
