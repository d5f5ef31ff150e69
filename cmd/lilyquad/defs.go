package main

import (
	"strconv"

	"github.com/gekko3d/lilylib/jsonbuilder"
	"github.com/gekko3d/lilylib/particledef"
	"github.com/rs/zerolog/log"
)

func defsCommand(path string) (string, error) {
	lib, err := particledef.Load(path)
	if err != nil {
		return "", err
	}
	log.Info().Str("file", path).Int("definitions", lib.Len()).Msg("definitions valid")
	return defsJSON(lib), nil
}

func defsJSON(lib *particledef.Library) string {
	b := jsonbuilder.New().Start().
		Int("count", lib.Len()).NewLine(true).
		StartObject("particles").NewLine(false)

	names := lib.Names()
	for i, name := range names {
		// Names come from the library, Get cannot fail.
		d, _ := lib.Get(name)
		b.StartObject(name).NewLine(false).
			String("id", d.ID.String()).NewLine(true).
			Int("max_age", d.MaxAge).NewLine(true).
			Float32("scale", d.Scale).NewLine(true).
			Float32("gravity", d.Gravity).NewLine(true).
			Float32("velocity_multiplier", d.VelocityMultiplier).NewLine(true).
			Array("color", floats(d.Color[:])...).NewLine(true).
			Array("spin", floats(d.Spin[:])...).NewLine(true).
			String("fade", d.Fade).NewLine(true).
			Int("frames", d.Frames).NewLine(false).
			CloseObject().NewLine(i < len(names)-1)
	}
	return b.CloseObject().NewLine(false).CloseObject().Build()
}

// floats formats numbers for jsonbuilder's string arrays.
func floats(v []float32) []string {
	out := make([]string, len(v))
	for i, f := range v {
		out[i] = strconv.FormatFloat(float64(f), 'g', -1, 32)
	}
	return out
}
