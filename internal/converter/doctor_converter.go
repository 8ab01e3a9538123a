package converter

import (
	"strings"

	"mediagenda/internal/domain/entity"
	"mediagenda/internal/gateway"
)

// Procedures travel as a single comma-joined text column on the wire.
const procedureSeparator = ","

func RowToDoctor(row *gateway.DoctorRow) *entity.Doctor {
	if row == nil {
		return nil
	}

	return &entity.Doctor{
		ID:         row.ID,
		Name:       row.Name,
		CPF:        row.CPF,
		Specialty:  row.Specialty,
		CRM:        row.CRM,
		Procedures: splitProcedures(row.Procedures),
		CreatedAt:  row.CreatedAt,
	}
}

func DoctorToRow(d *entity.Doctor) *gateway.DoctorRow {
	return &gateway.DoctorRow{
		Name:       d.Name,
		CPF:        d.CPF,
		Specialty:  d.Specialty,
		CRM:        d.CRM,
		Procedures: strings.Join(d.Procedures, procedureSeparator),
	}
}

func splitProcedures(joined string) []string {
	if joined == "" {
		return []string{}
	}
	parts := strings.Split(joined, procedureSeparator)
	procedures := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			procedures = append(procedures, trimmed)
		}
	}
	return procedures
}
