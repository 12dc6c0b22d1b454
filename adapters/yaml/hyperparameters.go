// Package yaml loads transfer hyperparameters from YAML documents shaped as
// source category -> target category -> propensity:
//
//	LR+:
//	  RN+: 0.35
//	  ENS+: 0.4
//	  ABS: 0.2
package yaml

import (
	"context"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"runoff/domain/party"
	"runoff/domain/transfer"
	"runoff/internal/errors"
	"runoff/ports"
)

var _ ports.HyperparameterSource = (*FileSource)(nil)

// FileSource reads hyperparameters from a YAML file
type FileSource struct {
	path string
}

// NewFileSource creates a source reading the given file on every Load
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Load opens and decodes the file
func (s *FileSource) Load(ctx context.Context) (transfer.Matrix, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open hyperparameters %s", s.path)
	}
	defer f.Close()

	m, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load hyperparameters %s", s.path)
	}
	return m, nil
}

// Decode parses one YAML document into a validated transfer matrix
func Decode(r io.Reader) (transfer.Matrix, error) {
	var raw map[string]map[string]float64
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if err == io.EOF {
			return nil, errors.InvalidInput("empty hyperparameter document")
		}
		return nil, errors.WithCode(errors.CodeInvalidInput, fmt.Errorf("decode hyperparameters: %w", err))
	}

	m := make(transfer.Matrix, len(raw))
	for srcLabel, row := range raw {
		src, err := party.Parse(srcLabel)
		if err != nil {
			return nil, errors.WithCode(errors.CodeInvalidInput, err)
		}
		m[src] = make(map[party.Category]float64, len(row))
		for dstLabel, w := range row {
			dst, err := party.Parse(dstLabel)
			if err != nil {
				return nil, errors.WithCode(errors.CodeInvalidInput, err)
			}
			m[src][dst] = w
		}
	}

	if err := m.Validate(); err != nil {
		return nil, errors.WithCode(errors.CodeInvalidInput, err)
	}
	return m, nil
}
