package catalog

import "sort"

// Memory is a map-backed catalog pair, used by the in-memory storage
// backend and by tests.
type Memory struct {
	vehicles     map[string]VehicleInfo
	achievements map[int64]AchievementInfo
}

// NewMemory returns an empty in-memory catalog.
func NewMemory() *Memory {
	return &Memory{
		vehicles:     make(map[string]VehicleInfo),
		achievements: make(map[int64]AchievementInfo),
	}
}

// PutVehicle inserts or replaces a vehicle record.
func (m *Memory) PutVehicle(info VehicleInfo) {
	m.vehicles[info.Tag] = info
}

// PutAchievement inserts or replaces an achievement record.
func (m *Memory) PutAchievement(info AchievementInfo) {
	m.achievements[info.ID] = info
}

func (m *Memory) LookupVehicle(tag string) (VehicleInfo, error) {
	info, ok := m.vehicles[tag]
	if !ok {
		return VehicleInfo{}, ErrNotFound
	}
	return info, nil
}

func (m *Memory) LookupAchievements(ids []int64, activeOnly bool) ([]AchievementInfo, error) {
	out := make([]AchievementInfo, 0, len(ids))
	for _, id := range ids {
		info, ok := m.achievements[id]
		if !ok {
			continue
		}
		if activeOnly && !info.Active {
			continue
		}
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Section != out[j].Section {
			return out[i].Section < out[j].Section
		}
		return out[i].Order < out[j].Order
	})
	return out, nil
}
