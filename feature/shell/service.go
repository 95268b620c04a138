package shell

import (
	"fmt"

	"asset-bridge/core/resources"

	"go.uber.org/zap"
)

// Resolver resolves an asset to its bytes.
type Resolver interface {
	Resolve(c resources.Category, name string) ([]byte, error)
}

// Service runs the shell commands.
type Service struct {
	resolver Resolver
	logger   *zap.Logger
}

// NewService creates a new shell service.
func NewService(resolver Resolver, logger *zap.Logger) *Service {
	return &Service{
		resolver: resolver,
		logger:   logger,
	}
}

// Greet returns the greeting for name.
func Greet(name string) string {
	return fmt.Sprintf("Hello, %s! You've been greeted from Go!", name)
}

// Greet returns the greeting for name.
func (s *Service) Greet(name string) string {
	return Greet(name)
}

// LoadAudioAsset returns the bytes of an audio file.
func (s *Service) LoadAudioAsset(filename string) ([]byte, error) {
	return s.resolver.Resolve(resources.Audio, filename)
}

// LoadModelFBXFromZip returns the first FBX scene inside a model archive.
func (s *Service) LoadModelFBXFromZip(zipFilename string) ([]byte, error) {
	return s.resolver.Resolve(resources.Models, zipFilename)
}
