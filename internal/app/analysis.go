package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"go.trai.ch/recomp/internal/adapters/analysis" //nolint:depguard // Wired in app layer
	"go.trai.ch/recomp/internal/core/domain"
	"go.trai.ch/zerr"
)

// ReadAnalysis reads an analysis file. Files ending in .yaml or .yml hold the human
// readable document form, anything else the binary form.
func (a *App) ReadAnalysis(path string) (*domain.ClassSetAnalysisData, error) {
	//nolint:gosec // Path is provided by the user on the command line
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFileOpenFailed.Error()), "path", path)
	}

	var result *domain.ClassSetAnalysisData
	if isYAML(path) {
		result, err = analysis.ParseYAML(data)
	} else {
		result, err = analysis.Decode(bytes.NewReader(data))
	}
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return result, nil
}

// ShowAnalysis renders the analysis stored at path, as YAML when asYAML is set.
func (a *App) ShowAnalysis(path string, asYAML bool) (string, error) {
	data, err := a.ReadAnalysis(path)
	if err != nil {
		return "", err
	}
	if !asYAML {
		return data.String(), nil
	}
	out, err := analysis.MarshalYAML(data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// ConvertAnalysis reads the analysis at in and writes it to out, choosing each format
// from the file extension.
func (a *App) ConvertAnalysis(in, out string) error {
	data, err := a.ReadAnalysis(in)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if isYAML(out) {
		encoded, err := analysis.MarshalYAML(data)
		if err != nil {
			return err
		}
		buf.Write(encoded)
	} else if err := analysis.Encode(&buf, data); err != nil {
		return err
	}

	if err := os.WriteFile(out, buf.Bytes(), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", out)
	}
	return nil
}

// DiffAnalysis returns a unified diff of the textual dumps of two analysis files. The
// result is empty when both describe the same analysis.
func (a *App) DiffAnalysis(from, to string) (string, error) {
	left, err := a.ReadAnalysis(from)
	if err != nil {
		return "", err
	}
	right, err := a.ReadAnalysis(to)
	if err != nil {
		return "", err
	}

	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(left.String()),
		B:        difflib.SplitLines(right.String()),
		FromFile: from,
		ToFile:   to,
		Context:  3,
	})
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
