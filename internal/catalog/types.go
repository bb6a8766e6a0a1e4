// internal/catalog/types.go
//
// The closed enumerations every specimen is drawn from. Values are the
// display strings used throughout the archive so filters and tables can
// compare against them directly.

package catalog

import "strings"

// Category groups specimens by the kind of sound event.
type Category string

const (
	CategoryTransport  Category = "Transport"
	CategoryDailyLife  Category = "Daily Life"
	CategoryCulture    Category = "Culture"
	CategoryRitual     Category = "Ritual"
	CategoryNature     Category = "Nature"
	CategoryCampus     Category = "Campus"
	CategoryIndustrial Category = "Industrial"
	CategoryVoice      Category = "Voice"
)

// District is an administrative region of the city.
type District string

const (
	DistrictDongcheng   District = "Dongcheng"
	DistrictXicheng     District = "Xicheng"
	DistrictChaoyang    District = "Chaoyang"
	DistrictHaidian     District = "Haidian"
	DistrictFengtai     District = "Fengtai"
	DistrictShijingshan District = "Shijingshan"
	DistrictTongzhou    District = "Tongzhou"
	DistrictDaxing      District = "Daxing"
	DistrictShunyi      District = "Shunyi"
	DistrictChangping   District = "Changping"
	DistrictYanqing     District = "Yanqing"
	DistrictHuairou     District = "Huairou"
	DistrictMiyun       District = "Miyun"
	DistrictPinggu      District = "Pinggu"
	DistrictMentougou   District = "Mentougou"
	DistrictFangshan    District = "Fangshan"
	// DistrictOutskirts is both a record district and the aggregate map
	// selector for the peripheral districts.
	DistrictOutskirts District = "Outskirts"
)

// Era tags are ordered loosely by history.
type Era string

const (
	EraOldBeijing Era = "Old Beijing"
	Era1980s      Era = "1980s"
	EraPost2000   Era = "Post-2000"
	EraModern     Era = "Modern"
	EraFuture     Era = "Future"
)

// TimeOfDay tags when a specimen was captured.
type TimeOfDay string

const (
	TimeMorning   TimeOfDay = "Morning"
	TimeNoon      TimeOfDay = "Noon"
	TimeEvening   TimeOfDay = "Evening"
	TimeNight     TimeOfDay = "Night"
	TimeLateNight TimeOfDay = "Late Night"
)

// FreqBands is the fixed length of a specimen's decorative bar sequence.
const FreqBands = 8

// FreqMax is the upper bound of a single bar value.
const FreqMax = 100

var allCategories = []Category{
	CategoryTransport, CategoryDailyLife, CategoryCulture, CategoryRitual,
	CategoryNature, CategoryCampus, CategoryIndustrial, CategoryVoice,
}

var allDistricts = []District{
	DistrictDongcheng, DistrictXicheng, DistrictChaoyang, DistrictHaidian,
	DistrictFengtai, DistrictShijingshan, DistrictTongzhou, DistrictDaxing,
	DistrictShunyi, DistrictChangping, DistrictYanqing, DistrictHuairou,
	DistrictMiyun, DistrictPinggu, DistrictMentougou, DistrictFangshan,
	DistrictOutskirts,
}

var allEras = []Era{EraOldBeijing, Era1980s, EraPost2000, EraModern, EraFuture}

var allTimes = []TimeOfDay{TimeMorning, TimeNoon, TimeEvening, TimeNight, TimeLateNight}

// outskirtsGroup lists the districts the Outskirts selector aggregates.
var outskirtsGroup = []District{
	DistrictTongzhou, DistrictDaxing, DistrictShunyi, DistrictChangping,
	DistrictYanqing, DistrictHuairou, DistrictMiyun, DistrictOutskirts,
}

// Districts returns every district in declaration order.
func Districts() []District {
	return append([]District(nil), allDistricts...)
}

// OutskirtsGroup returns the districts matched by the Outskirts selector.
func OutskirtsGroup() []District {
	return append([]District(nil), outskirtsGroup...)
}

// Eras returns the era tags from oldest to newest.
func Eras() []Era {
	return append([]Era(nil), allEras...)
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range allCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Valid reports whether d is one of the known districts.
func (d District) Valid() bool {
	for _, known := range allDistricts {
		if d == known {
			return true
		}
	}
	return false
}

// IsOutskirts reports whether d belongs to the aggregate peripheral group.
func (d District) IsOutskirts() bool {
	for _, member := range outskirtsGroup {
		if d == member {
			return true
		}
	}
	return false
}

// Valid reports whether e is one of the known eras.
func (e Era) Valid() bool {
	for _, known := range allEras {
		if e == known {
			return true
		}
	}
	return false
}

// Rank orders eras from oldest (0) to newest; unknown eras rank last.
func (e Era) Rank() int {
	for i, known := range allEras {
		if e == known {
			return i
		}
	}
	return len(allEras)
}

// Valid reports whether t is one of the known times of day.
func (t TimeOfDay) Valid() bool {
	for _, known := range allTimes {
		if t == known {
			return true
		}
	}
	return false
}

// ParseCategory matches s against the known categories case-insensitively.
func ParseCategory(s string) (Category, bool) {
	return parseEnum(s, allCategories)
}

// ParseDistrict matches s against the known districts case-insensitively.
func ParseDistrict(s string) (District, bool) {
	return parseEnum(s, allDistricts)
}

// ParseEra matches s against the known eras case-insensitively.
func ParseEra(s string) (Era, bool) {
	return parseEnum(s, allEras)
}

// ParseTimeOfDay matches s against the known times case-insensitively.
func ParseTimeOfDay(s string) (TimeOfDay, bool) {
	return parseEnum(s, allTimes)
}

func parseEnum[T ~string](s string, values []T) (T, bool) {
	trimmed := strings.TrimSpace(s)
	for _, v := range values {
		if strings.EqualFold(string(v), trimmed) {
			return v, true
		}
	}
	var zero T
	return zero, false
}
