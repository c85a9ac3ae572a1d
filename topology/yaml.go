package topology

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/emailanant84-innovation/Hackathon-Seat-Allocation/types"
)

// Document is the YAML topology file format.
//
// Seats may be declared either by count (generated IDs of the form
// S-<building>-<floor>-<zone>-<number>) or by explicit seat IDs:
//
//	teams:
//	  Platform: Engineering
//	  Data: Engineering
//	buildings:
//	  - id: B1
//	    floors:
//	      - id: F1
//	        zones:
//	          - id: A
//	            seats: 4
//	          - id: B
//	            seatIds: [S-CUSTOM-1, S-CUSTOM-2]
type Document struct {
	// Teams maps team ID to department ID.
	Teams map[string]string `yaml:"teams"`

	// Buildings is the physical layout.
	Buildings []BuildingDoc `yaml:"buildings"`
}

// BuildingDoc declares one building.
type BuildingDoc struct {
	ID     string     `yaml:"id"`
	Floors []FloorDoc `yaml:"floors"`
}

// FloorDoc declares one floor.
type FloorDoc struct {
	ID    string    `yaml:"id"`
	Zones []ZoneDoc `yaml:"zones"`
}

// ZoneDoc declares one zone, either by seat count or explicit seat IDs.
type ZoneDoc struct {
	ID      string   `yaml:"id"`
	Seats   int      `yaml:"seats"`
	SeatIDs []string `yaml:"seatIds"`
}

// Parse builds a Topology from YAML bytes.
//
// Parameters:
//   - data: YAML document in the Document format
//
// Returns:
//   - *Topology: The parsed, validated topology
//   - error: YAML or validation error
func Parse(data []byte) (*Topology, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse topology: %w", err)
	}

	return fromDocument(doc)
}

// Load reads and parses a YAML topology file.
//
// Parameters:
//   - path: Path to the topology file
//
// Returns:
//   - *Topology: The parsed, validated topology
//   - error: I/O, YAML or validation error
func Load(path string) (*Topology, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read topology file: %w", err)
	}

	return Parse(data)
}

func fromDocument(doc Document) (*Topology, error) {
	var seats []types.Seat
	for _, b := range doc.Buildings {
		for _, f := range b.Floors {
			for _, z := range f.Zones {
				key := types.ZoneKey{Building: b.ID, Floor: f.ID, Zone: z.ID}
				if len(z.SeatIDs) > 0 {
					for i, id := range z.SeatIDs {
						seats = append(seats, types.Seat{ID: id, Key: key, Number: i + 1})
					}

					continue
				}
				for n := 1; n <= z.Seats; n++ {
					seats = append(seats, types.Seat{
						ID:     fmt.Sprintf("S-%s-%s-%s-%03d", b.ID, f.ID, z.ID, n),
						Key:    key,
						Number: n,
					})
				}
			}
		}
	}

	return New(seats, doc.Teams)
}
