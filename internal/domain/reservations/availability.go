package reservations

import "time"

// VehicleRow — плоская строка инвентаря, которую собирает вызывающая сторона.
type VehicleRow struct {
	ID          string
	BranchID    *string
	ClassCode   string
	DisplayName string
}

type Filters struct {
	PickupBranch string
	ClassCode    string
}

type Availability struct {
	VehicleID   string `json:"vehicleId"`
	ClassCode   string `json:"classCode"`
	DisplayName string `json:"displayName"`
	Score       int    `json:"score"`
	Notes       string `json:"notes"`
}

// Resolve фильтрует машины по филиалу и классу и выкидывает занятые.
// Порядок входа сохраняется, сортировки нет; score пока фиксированный.
// Занятые машины отфильтровываются до присвоения пометки, так что
// "Occupied" сейчас недостижим — поведение сохранено как есть.
func Resolve(vehicles []VehicleRow, busy map[string]struct{}, f Filters) []Availability {
	out := []Availability{}
	for _, v := range vehicles {
		if f.PickupBranch != "" && (v.BranchID == nil || *v.BranchID != f.PickupBranch) {
			continue
		}
		if f.ClassCode != "" && v.ClassCode != f.ClassCode {
			continue
		}
		if _, taken := busy[v.ID]; taken {
			continue
		}
		note := "Available"
		if _, taken := busy[v.ID]; taken {
			note = "Occupied"
		}
		out = append(out, Availability{
			VehicleID:   v.ID,
			ClassCode:   v.ClassCode,
			DisplayName: v.DisplayName,
			Score:       1,
			Notes:       note,
		})
	}
	return out
}

// Overlaps — консервативный тест пересечения интервалов с закрытыми
// границами: возврат точно в начало чужой брони считается конфликтом
// (буфер на подготовку машины).
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	if !s1.After(s2) && !s2.After(e1) {
		return true
	}
	if !s1.After(e2) && !e2.After(e1) {
		return true
	}
	return !s2.After(s1) && !e1.After(e2)
}
