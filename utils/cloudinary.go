// File: utils/cloudinary.go
package utils

import (
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"

	"carelink/config"
	"carelink/services/storage"
)

// Cloudinary initializes and returns a Cloudinary-backed StorageService
// from the loaded application configuration.
func Cloudinary() (storage.StorageService, error) {
	cloudName := config.AppConfig.CloudinaryCloudName
	apiKey := config.AppConfig.CloudinaryAPIKey
	apiSecret := config.AppConfig.CloudinaryAPISecret

	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}

	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("utils.Cloudinary: failed to initialize Cloudinary: %w", err)
	}
	return storage.NewStorageService(cld, cloudName), nil
}
