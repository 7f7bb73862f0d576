package utils

import (
	"context"
	"log"
	"os"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/joho/godotenv"
)

// AvatarUpload is what the asset host hands back for a stored image.
type AvatarUpload struct {
	PublicID  string
	SecureURL string
}

// InitCloudinary initializes the Cloudinary client
func InitCloudinary() (*cloudinary.Cloudinary, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: Error loading .env file. Using environment variables directly.")
	}

	return cloudinary.NewFromParams(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"))
}

// UploadAvatar stores a doctor avatar and returns its public ID and secure
// URL. The file argument accepts anything the Cloudinary uploader does
// (io.Reader, local path, URL).
func UploadAvatar(file interface{}, folder string) (*AvatarUpload, error) {
	cld, err := InitCloudinary()
	if err != nil {
		return nil, err
	}

	resp, err := cld.Upload.Upload(context.Background(), file, uploader.UploadParams{
		Folder:         folder,
		Transformation: "c_thumb,w_200,h_200", // Resize profile pictures
	})
	if err != nil {
		return nil, err
	}
	return &AvatarUpload{PublicID: resp.PublicID, SecureURL: resp.SecureURL}, nil
}
