package converter

import (
	"mediagenda/internal/domain/entity"
	"mediagenda/internal/gateway"

	"github.com/google/uuid"
)

// RowsToSchedulingLists materializes lists from the primary collection plus
// the membership join rows. Membership order follows the join rows, which
// the store returns in insertion order.
func RowsToSchedulingLists(listRows []gateway.SchedulingListRow, memberRows []gateway.ListMemberRow) []entity.SchedulingList {
	lists := make([]entity.SchedulingList, 0, len(listRows))
	index := make(map[string]int, len(listRows))

	for _, row := range listRows {
		lists = append(lists, entity.SchedulingList{
			ID:              row.ID,
			Name:            row.Name,
			Date:            row.Date,
			DoctorID:        row.DoctorID,
			DoctorType:      row.DoctorType,
			PatientIDs:      []uuid.UUID{},
			PatientStatuses: map[uuid.UUID]entity.MemberStatus{},
			CreatedAt:       row.CreatedAt,
		})
		index[row.ID.String()] = len(lists) - 1
	}

	for _, m := range memberRows {
		i, ok := index[m.ListID.String()]
		if !ok {
			continue
		}
		lists[i].PatientIDs = append(lists[i].PatientIDs, m.PatientID)
		if m.Status != nil && *m.Status != "" {
			lists[i].PatientStatuses[m.PatientID] = entity.MemberStatus(*m.Status)
		}
	}

	return lists
}

func SchedulingListToRow(l *entity.SchedulingList) *gateway.SchedulingListRow {
	return &gateway.SchedulingListRow{
		Name:       l.Name,
		Date:       l.Date,
		DoctorID:   l.DoctorID,
		DoctorType: l.DoctorType,
	}
}

// MemberStatusToColumn maps a member status to its nullable wire value.
func MemberStatusToColumn(status entity.MemberStatus) *string {
	if status == entity.MemberStatusNone {
		return nil
	}
	s := string(status)
	return &s
}
