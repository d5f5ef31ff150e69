package jsonbuilder

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_FlatObject(t *testing.T) {
	out := New().
		Start().
		String("name", "ripple").NewLine(true).
		Int("max_age", 40).NewLine(true).
		Bool("animated", true).NewLine(true).
		Float32("scale", 0.5).NewLine(true).
		Float64("gravity", -1.25).NewLine(false).
		CloseObject().
		Build()

	want := "{\n" +
		"\t\"name\": \"ripple\",\n" +
		"\t\"max_age\": 40,\n" +
		"\t\"animated\": true,\n" +
		"\t\"scale\": 0.5,\n" +
		"\t\"gravity\": -1.25\n" +
		"}"
	assert.Equal(t, want, out)
	assert.True(t, json.Valid([]byte(out)))
}

func TestBuilder_Array(t *testing.T) {
	b := New().Start().Array("frames", "a", "b", "c").NewLine(false).CloseObject()

	want := "{\n" +
		"\t\"frames\": [\n" +
		"\t\t\"a\",\n" +
		"\t\t\"b\",\n" +
		"\t\t\"c\"\n" +
		"\t]\n" +
		"}"
	assert.Equal(t, want, b.Build())
	assert.Equal(t, 0, b.Depth())
}

func TestBuilder_EmptyArray(t *testing.T) {
	out := New().Start().Array("tags").NewLine(false).CloseObject().Build()

	assert.Equal(t, "{\n\t\"tags\": [\n\n\t]\n}", out)
	assert.True(t, json.Valid([]byte(out)))
}

func TestBuilder_NestedObject(t *testing.T) {
	out := New().
		Start().
		StartObject("color").
		Float32("r", 1).NewLine(true).
		Float32("a", 0.25).NewLine(false).
		CloseObject().NewLine(false).
		CloseObject().
		Build()

	var decoded map[string]map[string]float64
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, 0.25, decoded["color"]["a"])
	assert.Contains(t, out, "\t\t\"r\": 1,\n")
}

func TestBuilder_EscapesStrings(t *testing.T) {
	out := New().Start().String("say", "a \"quote\"\t<b>").NewLine(false).CloseObject().Build()

	var decoded map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "a \"quote\"\t<b>", decoded["say"])
	assert.Contains(t, out, "<b>")
}

func TestBuilder_NonFiniteFloatsAreNull(t *testing.T) {
	out := New().Start().
		Float64("nan", math.NaN()).NewLine(true).
		Float32("inf", float32(math.Inf(1))).NewLine(false).
		CloseObject().Build()

	assert.True(t, json.Valid([]byte(out)))
	assert.Contains(t, out, "\"nan\": null")
	assert.Contains(t, out, "\"inf\": null")
}
