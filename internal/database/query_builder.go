package database

import (
	"fmt"
	"strings"
)

type PanelQuery struct {
	columns string
	filters []string
	args    []interface{}
	orderBy string
	limit   int
}

func NewPanelQuery() *PanelQuery {
	return &PanelQuery{columns: panelColumns, orderBy: "position ASC"}
}

func (q *PanelQuery) Where(filter string, args ...interface{}) *PanelQuery {
	q.filters = append(q.filters, filter)
	q.args = append(q.args, args...)
	return q
}

func (q *PanelQuery) WhereProject(projectID int64) *PanelQuery {
	return q.Where("project_id = ?", projectID)
}

func (q *PanelQuery) WhereID(id string) *PanelQuery {
	return q.Where("id = ?", id)
}

func (q *PanelQuery) Limit(limit int) *PanelQuery {
	q.limit = limit
	return q
}

func (q *PanelQuery) Build() (string, []interface{}) {
	query := fmt.Sprintf("SELECT %s FROM panels", q.columns)
	if len(q.filters) > 0 {
		query += " WHERE " + strings.Join(q.filters, " AND ")
	}
	if q.orderBy != "" {
		query += " ORDER BY " + q.orderBy
	}
	if q.limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", q.limit)
	}
	return query, q.args
}
