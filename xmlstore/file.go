// SPDX-License-Identifier: MIT
// Package xmlstore: path-based wrappers around the stream functions.

package xmlstore

import (
	"io"
	"os"

	"github.com/katalvlaran/spdgeom/asr"
	"github.com/katalvlaran/spdgeom/classifier"
)

// create opens path for writing, runs save and closes the file, reporting the
// first error.
func create(path string, save func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return save(f)
}

// open opens path for reading and runs load.
func open(path string, load func(io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return load(f)
}

// SaveBiasFile writes b to path, truncating an existing file.
func SaveBiasFile(path string, b *classifier.Bias) error {
	return create(path, func(w io.Writer) error { return SaveBias(w, b) })
}

// LoadBiasFile reads path into b.
func LoadBiasFile(path string, b *classifier.Bias) error {
	return open(path, func(r io.Reader) error { return LoadBias(r, b) })
}

// SaveMDMFile writes c to path, truncating an existing file.
func SaveMDMFile(path string, c *classifier.MDM) error {
	return create(path, func(w io.Writer) error { return SaveMDM(w, c) })
}

// LoadMDMFile reads path into c.
func LoadMDMFile(path string, c *classifier.MDM) error {
	return open(path, func(r io.Reader) error { return LoadMDM(r, c) })
}

// SaveASRFile writes a to path, truncating an existing file.
func SaveASRFile(path string, a *asr.ASR) error {
	return create(path, func(w io.Writer) error { return SaveASR(w, a) })
}

// LoadASRFile reads path into a.
func LoadASRFile(path string, a *asr.ASR) error {
	return open(path, func(r io.Reader) error { return LoadASR(r, a) })
}
