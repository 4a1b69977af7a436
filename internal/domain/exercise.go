// internal/domain/exercise.go
package domain

// Exercise represents a single entry in the exercise catalog.
type Exercise struct {
	ID          string `bson:"id" json:"id"`
	Name        string `bson:"name" json:"name"`
	MuscleGroup string `bson:"muscle_group" json:"muscle_group"` // e.g., "Göğüs", "Sırt", "Bacak"
	Difficulty  string `bson:"difficulty" json:"difficulty"`     // e.g., "Başlangıç", "Orta", "İleri"
	Duration    string `bson:"duration" json:"duration"`         // Set/rep scheme, e.g. "3x12"
	Description string `bson:"description" json:"description"`
	VideoURL    string `bson:"video_url" json:"video_url"`
	Thumbnail   string `bson:"thumbnail" json:"thumbnail"`
}
