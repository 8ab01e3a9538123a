package converter

import (
	"mediagenda/internal/domain/entity"
	"mediagenda/internal/gateway"
)

// RowToPatient maps a wire row to the in-memory model.
func RowToPatient(row *gateway.PatientRow) *entity.Patient {
	if row == nil {
		return nil
	}

	return &entity.Patient{
		ID:              row.ID,
		Name:            row.Name,
		CPF:             row.CPF,
		Phone:           row.Phone,
		BasicHealthUnit: row.BasicHealthUnit,
		Address:         row.Address,
		SUSCard:         row.SUSCard,
		CommunityAgent:  row.CommunityAgent,
		DoctorType:      row.DoctorType,
		RegisteredBy:    row.RegisteredBy,
		CreatedAt:       row.CreatedAt,
	}
}

// PatientToRow maps the in-memory model to a wire row for insert. The id and
// created_at are left for the store to assign.
func PatientToRow(p *entity.Patient) *gateway.PatientRow {
	return &gateway.PatientRow{
		Name:            p.Name,
		CPF:             p.CPF,
		Phone:           p.Phone,
		BasicHealthUnit: p.BasicHealthUnit,
		Address:         p.Address,
		SUSCard:         p.SUSCard,
		CommunityAgent:  p.CommunityAgent,
		DoctorType:      p.DoctorType,
		RegisteredBy:    p.RegisteredBy,
	}
}

// PatientPatchToColumns translates a partial update into wire column names.
// Only present fields are written.
func PatientPatchToColumns(patch entity.PatientPatch) map[string]any {
	columns := make(map[string]any)
	if patch.Name != nil {
		columns["name"] = *patch.Name
	}
	if patch.CPF != nil {
		columns["cpf"] = *patch.CPF
	}
	if patch.Phone != nil {
		columns["phone"] = *patch.Phone
	}
	if patch.BasicHealthUnit != nil {
		columns["basic_health_unit"] = *patch.BasicHealthUnit
	}
	if patch.Address != nil {
		columns["address"] = *patch.Address
	}
	if patch.SUSCard != nil {
		columns["sus_card"] = *patch.SUSCard
	}
	if patch.CommunityAgent != nil {
		columns["community_agent"] = *patch.CommunityAgent
	}
	if patch.DoctorType != nil {
		columns["doctor_type"] = *patch.DoctorType
	}
	return columns
}
