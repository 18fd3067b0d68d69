package ports

import "github.com/mityas/tk-core/internal/core/domain"

// ConfigLoader reads pipeline configuration metadata.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the metadata of the pipeline configuration rooted at the
	// given path.
	Load(pipelineConfigPath string) (*domain.PipelineConfig, error)
}
