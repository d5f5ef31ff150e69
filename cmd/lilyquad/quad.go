package main

import (
	"fmt"
	"strconv"

	"github.com/gekko3d/lilylib/jsonbuilder"
	"github.com/gekko3d/lilylib/particle"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

type quadArgs struct {
	Pos, Prev, Camera mgl64.Vec3
	Angles            mgl32.Vec3
	Size, TickDelta   float32
}

func quadCommand() (string, error) {
	q := CLI.Quad
	args := quadArgs{Size: q.Size, TickDelta: q.TickDelta}

	var err error
	if args.Pos, err = vec3("pos", q.Pos); err != nil {
		return "", err
	}
	args.Prev = args.Pos
	if len(q.Prev) > 0 {
		if args.Prev, err = vec3("prev", q.Prev); err != nil {
			return "", err
		}
	}
	if args.Camera, err = vec3("camera", q.Camera); err != nil {
		return "", err
	}
	angles, err := vec3("angles", q.Angles)
	if err != nil {
		return "", err
	}
	if q.Degrees {
		angles = angles.Mul(mgl64.DegToRad(1))
	}
	args.Angles = mgl32.Vec3{float32(angles[0]), float32(angles[1]), float32(angles[2])}

	return quadJSON(args), nil
}

func vec3(name string, v []float64) (mgl64.Vec3, error) {
	if len(v) != 3 {
		return mgl64.Vec3{}, fmt.Errorf("--%s wants 3 components, got %d", name, len(v))
	}
	return mgl64.Vec3{v[0], v[1], v[2]}, nil
}

// quadJSON builds the quad with the angles held constant over the tick and
// renders the camera-relative corners.
func quadJSON(a quadArgs) string {
	s := particle.NewBillboardState(a.Prev, 0)
	s.Position = a.Pos
	s.AngleX, s.PrevAngleX = a.Angles[0], a.Angles[0]
	s.AngleY, s.PrevAngleY = a.Angles[1], a.Angles[1]
	s.AngleZ, s.PrevAngleZ = a.Angles[2], a.Angles[2]

	corners := particle.BuildQuad(&s, a.Camera, a.TickDelta, a.Size)

	b := jsonbuilder.New().Start().
		Float32("size", a.Size).NewLine(true).
		Float32("tick_delta", a.TickDelta).NewLine(true).
		StartObject("corners").NewLine(false)
	for i, c := range corners {
		b.StartObject(strconv.Itoa(i)).NewLine(false).
			Float32("x", c[0]).NewLine(true).
			Float32("y", c[1]).NewLine(true).
			Float32("z", c[2]).NewLine(false).
			CloseObject().NewLine(i < len(corners)-1)
	}
	return b.CloseObject().NewLine(false).CloseObject().Build()
}
