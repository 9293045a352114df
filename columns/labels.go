package columns

import "github.com/datazip-inc/olake-tableview/types"

type labelSet struct {
	columns  map[types.ColumnKind]string
	statuses map[string]string
	actions  map[string]string
}

var labels = map[string]labelSet{
	"en": {
		columns: map[types.ColumnKind]string{
			types.Identifier: "ID",
			types.Text:       "Title",
			types.Enumerated: "Status",
			types.Timestamp:  "Created at",
			types.Action:     "Actions",
		},
		statuses: map[string]string{
			"active":    "Active",
			"inactive":  "Inactive",
			"draft":     "Draft",
			"archived":  "Archived",
			"rejected":  "Rejected",
			"published": "Published",
			"pending":   "Pending review",
		},
		actions: map[string]string{
			"edit":   "Edit",
			"delete": "Delete",
		},
	},
	"ru": {
		columns: map[types.ColumnKind]string{
			types.Identifier: "ID",
			types.Text:       "Заголовок",
			types.Enumerated: "Статус",
			types.Timestamp:  "Дата создания",
			types.Action:     "Действия",
		},
		statuses: map[string]string{
			"active":    "Активен",
			"inactive":  "Неактивен",
			"draft":     "Черновик",
			"archived":  "Архив",
			"rejected":  "Отклонено",
			"published": "Опубликован",
			"pending":   "На модерации",
		},
		actions: map[string]string{
			"edit":   "Редактировать",
			"delete": "Удалить",
		},
	},
}

func labelsFor(locale string) labelSet {
	if set, ok := labels[locale]; ok {
		return set
	}
	return labels["en"]
}

// StatusLabel returns the display label of a status value, or the value itself
// when it is not a known status.
func StatusLabel(locale, status string) string {
	if label, ok := labelsFor(locale).statuses[status]; ok {
		return label
	}
	return status
}

// ActionLabel returns the display label of a row action
func ActionLabel(locale, action string) string {
	if label, ok := labelsFor(locale).actions[action]; ok {
		return label
	}
	return action
}
