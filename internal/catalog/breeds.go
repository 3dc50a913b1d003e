package catalog

import (
	"fmt"
	"strings"

	"github.com/julianstephens/petgarden/internal/models"
)

// Breed is an adoptable look: a pet type plus its base image.
type Breed struct {
	Name  string
	Type  models.PetType
	Image string
}

const iconBase = "https://api.iconify.design/"

var breeds = []Breed{
	{"White Cat", models.PetTypeCat, iconBase + "noto:cat.svg"},
	{"Bichon", models.PetTypeDog, iconBase + "noto:dog.svg"},
	{"Border Collie", models.PetTypeDog, iconBase + "noto:guide-dog.svg"},
	{"Ragdoll", models.PetTypeCat, iconBase + "noto:cat-face.svg"},
	{"Shiba", models.PetTypeDog, iconBase + "noto:service-dog.svg"},
	{"Bulldog", models.PetTypeDog, iconBase + "noto:poodle.svg"},
	{"French Bulldog", models.PetTypeDog, iconBase + "noto:dog-face.svg"},
	{"Black Cat", models.PetTypeCat, iconBase + "fluent-emoji:cat-face.svg"},
	{"Orange Tabby", models.PetTypeCat, iconBase + "fluent-emoji:smiling-cat-with-heart-eyes.svg"},
	{"Corgi", models.PetTypeDog, iconBase + "fluent-emoji:dog-face.svg"},
	{"Labrador", models.PetTypeDog, iconBase + "fluent-emoji:guide-dog.svg"},
	{"Russian Blue", models.PetTypeCat, iconBase + "fluent-emoji:cat.svg"},
	{"Samoyed", models.PetTypeDog, iconBase + "noto:poodle.svg"},
	{"Calico", models.PetTypeCat, iconBase + "noto:cat-with-wry-smile.svg"},
	{"Teddy", models.PetTypeDog, iconBase + "fluent-emoji:poodle.svg"},
	{"Siamese", models.PetTypeCat, iconBase + "fluent-emoji:crying-cat.svg"},
	{"Silver Shaded", models.PetTypeCat, iconBase + "fluent-emoji:kissing-cat.svg"},
	{"Golden Retriever", models.PetTypeDog, iconBase + "fluent-emoji:service-dog.svg"},
	{"German Shepherd", models.PetTypeDog, iconBase + "noto:dog.svg"},
	{"Husky", models.PetTypeDog, iconBase + "noto:wolf.svg"},
	{"Bunny", models.PetTypeRabbit, iconBase + "fluent-emoji:rabbit-face.svg"},
}

// Breeds returns the adoptable breeds.
func Breeds() []Breed {
	return append([]Breed(nil), breeds...)
}

// FindBreed looks a breed up by name, ignoring case and spaces around it.
func FindBreed(name string) (Breed, error) {
	for _, b := range breeds {
		if strings.EqualFold(b.Name, strings.TrimSpace(name)) {
			return b, nil
		}
	}
	return Breed{}, fmt.Errorf("unknown breed %q (run 'petgarden adopt --list-breeds')", name)
}
