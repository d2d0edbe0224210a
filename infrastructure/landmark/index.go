package landmark

import (
	"os"
	"sync"

	ltypes "veriface.io/infrastructure/landmark/types"
	"veriface.io/infrastructure/logger"
)

var once = sync.Once{}

var provider ltypes.LandmarkProviderType

// InitialiseLandmarkProvider picks the best available provider at startup.
// The mesh sidecar gives the full detection pipeline; without it the
// cascade classifier keeps the engine running in reduced mode.
func InitialiseLandmarkProvider() ltypes.LandmarkProviderType {
	once.Do(func() {
		meshURL := os.Getenv("MESH_SERVICE_URL")
		if meshURL != "" {
			provider = NewMeshProvider(meshURL)
			logger.Info("landmark provider initialised", logger.LoggerOptions{
				Key:  "provider",
				Data: "mesh",
			}, logger.LoggerOptions{
				Key:  "url",
				Data: meshURL,
			})
			return
		}

		cascade, err := NewCascadeProvider()
		if err != nil {
			logger.Error("failed to initialise any landmark provider", logger.LoggerOptions{
				Key:  "error",
				Data: err,
			})
			panic(err)
		}
		provider = cascade
		logger.Warning("landmark provider initialised without mesh support, sessions will run reduced analysis", logger.LoggerOptions{
			Key:  "provider",
			Data: "cascade",
		})
	})
	return provider
}

func GetProvider() ltypes.LandmarkProviderType {
	return InitialiseLandmarkProvider()
}
