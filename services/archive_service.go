package services

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"

	config "github.com/rihlaty/travel-ops/configs"
)

// ArchiveDocument uploads a rendered itinerary PDF to cloud storage so
// the office keeps a copy of exactly what was sent to the client.
// Archival is best-effort: a missing CLOUDINARY_URL or a failed upload
// never affects the response already sent to the caller.
func ArchiveDocument(pdf []byte, bookingID uuid.UUID, filename string) (string, error) {
	if config.Config("CLOUDINARY_URL") == "" {
		return "", nil
	}

	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	uploadParams := uploader.UploadParams{
		PublicID:     fmt.Sprintf("itineraries/%s_%s", bookingID, filename),
		Folder:       "travel_ops_documents",
		ResourceType: "raw",
	}

	uploadResult, err := cld.Upload.Upload(ctx, bytes.NewReader(pdf), uploadParams)
	if err != nil {
		return "", err
	}

	log.Printf("✅ Archived document %s for booking %s", filename, bookingID)
	return uploadResult.SecureURL, nil
}
