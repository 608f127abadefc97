package catalog

import (
	"bytes"
	_ "embed"
	"os"

	"room-booking/internal/domain/room"
	"room-booking/internal/pkg/errs"

	"gopkg.in/yaml.v3"
)

//go:embed rooms.yaml
var defaultSeed []byte

var ErrInvalidSeed = errs.New("invalid room catalog seed")

type seedFile struct {
	Rooms []seedRoom `yaml:"rooms"`
}

type seedRoom struct {
	ID          int      `yaml:"id"`
	Name        string   `yaml:"name"`
	Capacity    int      `yaml:"capacity"`
	Equipment   []string `yaml:"equipment"`
	Image       string   `yaml:"image"`
	Description string   `yaml:"description"`
}

// Load reads the seed table at path, or the embedded one when path is empty.
func Load(path string) (*room.Catalog, error) {
	if path == "" {
		return Parse(defaultSeed)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrap(err, "read catalog seed "+path)
	}
	return Parse(data)
}

func Parse(data []byte) (*room.Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f seedFile
	if err := dec.Decode(&f); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "decode catalog seed"), ErrInvalidSeed)
	}

	rooms := make([]*room.Room, 0, len(f.Rooms))
	for _, sr := range f.Rooms {
		r, err := room.NewRoom(sr.ID, sr.Name, sr.Capacity, sr.Equipment, sr.Image, sr.Description)
		if err != nil {
			return nil, errs.Mark(errs.Wrap(err, "room "+sr.Name), ErrInvalidSeed)
		}
		rooms = append(rooms, r)
	}

	c, err := room.NewCatalog(rooms)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSeed)
	}
	return c, nil
}
