package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IntRange is an inclusive integer range stored as JSONB.
type IntRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Value implements the driver.Valuer interface.
func (r IntRange) Value() (driver.Value, error) {
	return json.Marshal(r)
}

// Scan implements the sql.Scanner interface.
func (r *IntRange) Scan(value interface{}) error {
	return scanJSON(value, r)
}

// RangePair holds separate ranges for compound and isolation exercises.
type RangePair struct {
	Compound  IntRange `json:"compound"`
	Isolation IntRange `json:"isolation"`
}

// Value implements the driver.Valuer interface.
func (p RangePair) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// Scan implements the sql.Scanner interface.
func (p *RangePair) Scan(value interface{}) error {
	return scanJSON(value, p)
}

// SplitMap maps split keys such as "day1" to a muscle-group tag or the
// sentinel "rest". Stored as JSONB.
type SplitMap map[string]string

// Value implements the driver.Valuer interface.
func (m SplitMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return "{}", nil
	}
	return json.Marshal(m)
}

// Scan implements the sql.Scanner interface.
func (m *SplitMap) Scan(value interface{}) error {
	if value == nil {
		*m = SplitMap{}
		return nil
	}
	return scanJSON(value, m)
}

// SplitDay is one resolved entry of a SplitMap.
type SplitDay struct {
	Day         int
	MuscleGroup string
}

// Days returns the split entries ordered by day number. The day number is
// the trailing integer of the key ("day3" -> 3); keys without one are
// skipped.
func (m SplitMap) Days() []SplitDay {
	days := make([]SplitDay, 0, len(m))
	for key, group := range m {
		n, err := strconv.Atoi(strings.TrimPrefix(key, "day"))
		if err != nil {
			continue
		}
		days = append(days, SplitDay{Day: n, MuscleGroup: group})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Day < days[j].Day })
	return days
}

// PlanConfig is one row of the generation configuration table. Many rows
// may exist per (goal, experience, venue); resolution picks exactly one.
type PlanConfig struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FitnessGoal        string    `gorm:"size:50;not null;index" json:"fitness_goal"`
	ExperienceLevel    string    `gorm:"size:20;not null;index" json:"experience_level"`
	Venue              string    `gorm:"size:20;not null" json:"venue"`
	MuscleGroupSplit   SplitMap  `gorm:"type:jsonb;not null" json:"muscle_group_split"`
	ExerciseCountRange IntRange  `gorm:"type:jsonb;not null" json:"exercise_count_range"`
	RestPeriodRange    IntRange  `gorm:"type:jsonb;not null" json:"rest_period_range"`
	SetRanges          RangePair `gorm:"type:jsonb;not null" json:"set_ranges"`
	RepRanges          RangePair `gorm:"type:jsonb;not null" json:"rep_ranges"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (c *PlanConfig) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

func scanJSON(value, dest interface{}) error {
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("unsupported column type %T", value)
	}
	return json.Unmarshal(bytes, dest)
}
