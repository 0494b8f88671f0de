package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/piwi3910/ReactorCalc/internal/model"
)

// StudyExt is the file extension used for saved studies.
const StudyExt = ".reactorstudy"

// StudyInfo is the listing entry for a saved study.
type StudyInfo struct {
	Path      string
	ID        string
	Name      string
	UpdatedAt string
	Rows      int
}

// DefaultStudiesDir returns the directory studies are saved to by default.
func DefaultStudiesDir() string {
	return filepath.Join(DefaultConfigDir(), "studies")
}

// StudyPath returns the file a study is stored in within dir.
func StudyPath(dir string, study model.Study) string {
	return filepath.Join(dir, study.ID+StudyExt)
}

// SaveStudy writes the study to dir as JSON and returns the file path.
// UpdatedAt is refreshed on every save.
func SaveStudy(dir string, study *model.Study) (string, error) {
	if study.ID == "" {
		return "", errors.New("study has no id")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create studies directory: %w", err)
	}
	study.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	data, err := json.MarshalIndent(study, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal study: %w", err)
	}
	path := StudyPath(dir, *study)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write study: %w", err)
	}
	return path, nil
}

// LoadStudy reads a study from the given path.
func LoadStudy(path string) (model.Study, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Study{}, err
	}
	var study model.Study
	if err := json.Unmarshal(data, &study); err != nil {
		return model.Study{}, fmt.Errorf("failed to parse study %s: %w", filepath.Base(path), err)
	}
	if study.Rows == nil {
		study.Rows = []model.SweepRow{}
	}
	return study, nil
}

// ListStudies returns the studies saved in dir, most recently updated first.
// A missing directory yields an empty list. Unreadable files are skipped.
func ListStudies(dir string) ([]StudyInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []StudyInfo{}, nil
		}
		return nil, err
	}

	infos := []StudyInfo{}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), StudyExt) {
			continue
		}
		path := filepath.Join(dir, e.Name())
		study, err := LoadStudy(path)
		if err != nil {
			continue
		}
		infos = append(infos, StudyInfo{
			Path:      path,
			ID:        study.ID,
			Name:      study.Name,
			UpdatedAt: study.UpdatedAt,
			Rows:      len(study.Rows),
		})
	}

	sort.SliceStable(infos, func(i, j int) bool {
		return infos[i].UpdatedAt > infos[j].UpdatedAt
	})
	return infos, nil
}
