// Package config provides the pipeline configuration metadata loader.
package config

import (
	"os"
	"path/filepath"

	"github.com/mityas/tk-core/internal/core/domain"
	"github.com/mityas/tk-core/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using the YAML metadata file every
// pipeline configuration carries.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads config/core/pipeline_configuration.yml under the given root.
func (l *Loader) Load(pipelineConfigPath string) (*domain.PipelineConfig, error) {
	metaPath := filepath.Join(pipelineConfigPath, filepath.FromSlash(domain.PipelineConfigFile))

	data, err := os.ReadFile(metaPath) //nolint:gosec // path is the caller-supplied configuration root
	if err != nil {
		return nil, zerr.With(
			zerr.Wrap(err, domain.ErrConfigReadFailed.Error()),
			"path", metaPath,
		)
	}

	var dto pipelineConfigDTO
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return nil, zerr.With(
			zerr.Wrap(err, domain.ErrConfigParseFailed.Error()),
			"path", metaPath,
		)
	}

	return &domain.PipelineConfig{
		ProjectName: dto.ProjectName,
		Name:        dto.PcName,
		ID:          dto.PcID,
		Path:        pipelineConfigPath,
	}, nil
}

var _ ports.ConfigLoader = (*Loader)(nil)
