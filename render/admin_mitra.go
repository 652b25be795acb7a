package render

import (
	"lapangin-web/catalog"
	"lapangin-web/models"
)

type MitraRow struct {
	ID        string
	Nama      string
	Email     string
	Date      string
	Status    string
	Reason    string
	CSRFToken string
}

func NewMitraRow(m models.Mitra) MitraRow {
	row := MitraRow{ID: m.ID, Nama: m.Nama, Email: m.Email, Date: NoDate, Status: m.Status, Reason: m.Reason}
	if m.TanggalDaftar != nil {
		row.Date = catalog.FormatDateID(*m.TanggalDaftar)
	}
	return row
}

type MitraColumn struct {
	Key     string
	Label   string
	Active  bool
	Dir     string
	NextDir string
}

// NoDate is shown for partners without a registration date.
const NoDate = "-"

type MitraTable struct {
	Columns []MitraColumn
	Rows    []MitraRow
	Loaded  bool
}

// MitraPage collects what the partner table controller shows.
type MitraPage struct {
	Page
	Table MitraTable
}

var mitraColumns = []struct{ key, label string }{
	{models.MitraSortNama, "Nama"},
	{models.MitraSortEmail, "Email"},
	{models.MitraSortTanggalDaftar, "Tanggal Daftar"},
	{models.MitraSortStatus, "Status"},
}

func (r *Renderer) NewMitraPage() *MitraPage {
	p := &MitraPage{Page: Page{Title: "Persetujuan Mitra", Static: r.staticBase}}
	p.setColumns(models.DefaultMitraSort)
	return p
}

func (p *MitraPage) ShowMitra(rows []models.Mitra, sort models.MitraSort) {
	p.Table.Loaded = true
	p.Table.Rows = make([]MitraRow, 0, len(rows))
	for _, m := range rows {
		p.Table.Rows = append(p.Table.Rows, NewMitraRow(m))
	}
	p.setColumns(sort)
}

func (p *MitraPage) setColumns(sort models.MitraSort) {
	p.Table.Columns = p.Table.Columns[:0]
	for _, c := range mitraColumns {
		p.Table.Columns = append(p.Table.Columns, MitraColumn{
			Key:     c.key,
			Label:   c.label,
			Active:  c.key == sort.Key,
			Dir:     sort.Dir,
			NextDir: sort.Toggle(c.key).Dir,
		})
	}
}

// ShowRowStatus updates the badge of a single row in place.
func (p *MitraPage) ShowRowStatus(m models.Mitra) {
	for i := range p.Table.Rows {
		if p.Table.Rows[i].ID == m.ID {
			p.Table.Rows[i].Status = m.Status
			p.Table.Rows[i].Reason = m.Reason
			return
		}
	}
}
