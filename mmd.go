// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package mmd is the top-level facade over this module's PMX model and
// VMD motion codecs, and the camera animation evaluator built on top of
// a decoded VMD's camera track. Applications that just want to load and
// save files can stay in this package; the pmx, vmd, camera, track, and
// bezier packages are exposed for anyone who needs the lower-level
// pieces directly.
package mmd

import (
	"fmt"
	"os"

	"github.com/Pachira762/MiniMmdTools/camera"
	"github.com/Pachira762/MiniMmdTools/pmx"
	"github.com/Pachira762/MiniMmdTools/vmd"
)

// DecodePMX parses a PMX model from an in-memory buffer.
func DecodePMX(buf []byte) (*pmx.Pmx, error) { return pmx.Decode(buf) }

// EncodePMX serializes a PMX model. Encoding is not guaranteed to
// reproduce the original bytes: indices are always normalized to their
// widest (4-byte) form regardless of what width the source file used.
func EncodePMX(model *pmx.Pmx) []byte { return pmx.Encode(model) }

// DecodeVMD parses a VMD motion from an in-memory buffer.
func DecodeVMD(buf []byte) (*vmd.Vmd, error) { return vmd.Decode(buf) }

// EncodeVMD serializes a VMD motion. A motion key decoded from a file keeps
// its 64-byte interpolation table, so its filler bytes are written back
// unchanged; the exception is a key decoded as physics, whose table bytes
// [2]/[3] are rewritten (see vmd/interp.go). A key built in code starts
// from a default table.
func EncodeVMD(motion *vmd.Vmd) []byte { return vmd.Encode(motion) }

// LoadPMXFile reads and decodes a .pmx file from disk.
func LoadPMXFile(path string) (*pmx.Pmx, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("mmd: read %s: %w", path, err)
	}
	model, err := pmx.Decode(buf)
	if err != nil {
		return nil, fmt.Errorf("mmd: decode %s: %w", path, err)
	}
	return model, nil
}

// SavePMXFile encodes and writes a .pmx file to disk.
func SavePMXFile(path string, model *pmx.Pmx) error {
	if err := os.WriteFile(path, pmx.Encode(model), 0644); err != nil {
		return fmt.Errorf("mmd: write %s: %w", path, err)
	}
	return nil
}

// LoadVMDFile reads and decodes a .vmd file from disk.
func LoadVMDFile(path string) (*vmd.Vmd, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("mmd: read %s: %w", path, err)
	}
	motion, err := vmd.Decode(buf)
	if err != nil {
		return nil, fmt.Errorf("mmd: decode %s: %w", path, err)
	}
	return motion, nil
}

// SaveVMDFile encodes and writes a .vmd file to disk.
func SaveVMDFile(path string, motion *vmd.Vmd) error {
	if err := os.WriteFile(path, vmd.Encode(motion), 0644); err != nil {
		return fmt.Errorf("mmd: write %s: %w", path, err)
	}
	return nil
}

// CameraSequence builds a cut-annotated, evaluatable camera sequence from
// a decoded motion's camera track. A motion with no camera keys yields a
// sequence that always evaluates to the zero camera.Property.
func CameraSequence(motion *vmd.Vmd) *camera.Sequence {
	return camera.BuildSequence(motion.CameraTrack.Keys)
}
