package media

import (
	"io"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
)

// Store reads and writes listing images through a GridFS bucket.
type Store struct {
	db *mongo.Database
}

// Upload streams an image into GridFS under the given filename and
// returns the generated file ID as a hex string.  The ID becomes the
// listing's image reference.
func (s *Store) Upload(file io.Reader, filename string) (string, error) {
	bucket, err := gridfs.NewBucket(s.db)
	if err != nil {
		return "", err
	}
	stream, err := bucket.OpenUploadStream(filename)
	if err != nil {
		return "", err
	}
	defer stream.Close()

	if _, err := io.Copy(stream, file); err != nil {
		return "", err
	}
	return stream.FileID.(primitive.ObjectID).Hex(), nil
}

// Download returns the raw bytes of a stored image by its hex ID.
func (s *Store) Download(id string) ([]byte, error) {
	bucket, err := gridfs.NewBucket(s.db)
	if err != nil {
		return nil, err
	}
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	stream, err := bucket.OpenDownloadStream(objID)
	if err != nil {
		return nil, err
	}
	defer stream.Close()
	return io.ReadAll(stream)
}

// Delete removes a stored image.  Unknown IDs are not an error; the
// listing reference may outlive the file.
func (s *Store) Delete(id string) error {
	bucket, err := gridfs.NewBucket(s.db)
	if err != nil {
		return err
	}
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	if err := bucket.Delete(objID); err != nil && err != gridfs.ErrFileNotFound {
		return err
	}
	return nil
}
