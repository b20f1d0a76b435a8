package roster

import (
	"strconv"
	"strings"
)

// Admin menu button labels. Matched against incoming admin text verbatim.
const (
	BtnCreateList  = "➕ Создать новый список"
	BtnShowCurrent = "📋 Показать текущий список"
	BtnSetStatus   = "🛠 Изменить статус"
	BtnDeleteItem  = "❌ Удалить пункт"
	BtnFinalize    = "📤 Выдать итоговый список"
	BtnCloseShift  = "🔒 Закончить поток"
	BtnFullReset   = "🧹 Полный сброс"
)

// Reply texts.
const (
	ReplyEmptyList     = "Список пуст"
	ReplyPromptItems   = "Отправь список пунктов, каждый с новой строки"
	ReplyPromptDelete  = "Отправь номер пункта для удаления"
	ReplyPromptStatus  = "Формат:\nномер ready/off\nПример:\n2 ready"
	ReplyItemDeleted   = "Пункт удалён"
	ReplyStatusUpdated = "Статус обновлён"
	ReplyShiftClosed   = "Поток закрыт."
	ReplyFullReset     = "Система полностью сброшена"
	ReplyListCreated   = "Список создан:"
	ReplyAccepted      = "Принято ✅"
	ReplyAlreadyDone   = "Ты уже отправлял статус"
)

// Result is the outcome of applying one inbound message to the document.
// An empty Reply means the message was silently ignored; Changed tells the
// caller whether the document must be persisted.
type Result struct {
	Reply   string
	Changed bool
}

// CreateList resets the document and opens a new shift. The roster stays
// empty until the next admin message supplies the list body.
func CreateList(d *Document) Result {
	d.Reset()
	d.Active = true
	return Result{Reply: ReplyPromptItems, Changed: true}
}

// ShowCurrent renders the roster without finalization markers. No mutation.
func ShowCurrent(d *Document) Result {
	return Result{Reply: renderOr(d, false, ReplyEmptyList)}
}

// Finalize renders the roster with unreported items marked. No mutation.
func Finalize(d *Document) Result {
	return Result{Reply: renderOr(d, true, ReplyEmptyList)}
}

// CloseShift stops accepting participant submissions and reports the final
// roster. Items and statuses are preserved.
func CloseShift(d *Document) Result {
	d.Active = false
	return Result{Reply: ReplyShiftClosed + "\n\n" + renderOr(d, true, ReplyEmptyList), Changed: true}
}

// FullReset wipes the document back to defaults with the shift closed.
func FullReset(d *Document) Result {
	d.Reset()
	return Result{Reply: ReplyFullReset, Changed: true}
}

// BeginDelete arms the delete workflow; the next admin message is consumed
// as the target item number.
func BeginDelete(d *Document) Result {
	d.AdminState = WorkflowDelete
	return Result{Reply: ReplyPromptDelete, Changed: true}
}

// BeginStatusUpdate arms the status-update workflow; the next admin message
// is consumed as "<number> <ready|off>".
func BeginStatusUpdate(d *Document) Result {
	d.AdminState = WorkflowSetStatus
	return Result{Reply: ReplyPromptStatus, Changed: true}
}

// SubmitListBody fills the empty active roster from the message text, one
// item per non-blank line in order.
func SubmitListBody(d *Document, text string) Result {
	items := make([]string, 0)
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	d.List = items
	d.AdminState = WorkflowIdle
	return Result{Reply: ReplyListCreated + "\n\n" + Render(d, false), Changed: true}
}

// ResolveDelete consumes the pending delete target. Malformed or out-of-range
// input leaves the workflow armed and produces no reply.
func ResolveDelete(d *Document, text string) Result {
	num, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || !d.InRange(num) {
		return Result{}
	}
	d.DeleteItem(num)
	d.AdminState = WorkflowIdle
	return Result{Reply: ReplyItemDeleted, Changed: true}
}

// ResolveStatusUpdate consumes the pending "<number> <ready|off>" argument.
// Anything that does not parse exactly leaves the workflow armed with no reply.
func ResolveStatusUpdate(d *Document, text string) Result {
	parts := strings.Fields(text)
	if len(parts) != 2 {
		return Result{}
	}
	num, err := strconv.Atoi(parts[0])
	if err != nil || !d.InRange(num) {
		return Result{}
	}
	st := Status(parts[1])
	if st != StatusReady && st != StatusOff {
		return Result{}
	}
	d.SetStatus(num, st)
	d.AdminState = WorkflowIdle
	return Result{Reply: ReplyStatusUpdated, Changed: true}
}

// HandleAdmin applies one admin message to the document. Menu buttons are
// matched first and unconditionally; then, if the shift is active and the
// roster empty, the message is taken as the list body; then a pending
// workflow consumes it; anything else is a no-op. The order matters because
// several conditions can hold at once.
func HandleAdmin(d *Document, text string) Result {
	switch strings.TrimSpace(text) {
	case BtnCreateList:
		return CreateList(d)
	case BtnShowCurrent:
		return ShowCurrent(d)
	case BtnFinalize:
		return Finalize(d)
	case BtnCloseShift:
		return CloseShift(d)
	case BtnFullReset:
		return FullReset(d)
	case BtnDeleteItem:
		return BeginDelete(d)
	case BtnSetStatus:
		return BeginStatusUpdate(d)
	}

	if d.Active && len(d.List) == 0 {
		return SubmitListBody(d, text)
	}

	switch d.AdminState {
	case WorkflowDelete:
		return ResolveDelete(d, strings.TrimSpace(text))
	case WorkflowSetStatus:
		return ResolveStatusUpdate(d, strings.TrimSpace(text))
	}

	return Result{}
}

// HandleParticipant applies one participant message to the document.
// Inactive shift and unparsable reports are dropped without a reply; a second
// report from the same participant is rejected without touching statuses.
func HandleParticipant(d *Document, userID int64, text string) Result {
	if !d.Active {
		return Result{}
	}
	if d.HasSubmitted(userID) {
		return Result{Reply: ReplyAlreadyDone}
	}

	sub, ok := ParseSubmission(text, len(d.List))
	if !ok {
		return Result{}
	}

	d.SetStatus(sub.Number, sub.Status)
	d.MarkSubmitted(userID)
	return Result{Reply: ReplyAccepted, Changed: true}
}

// AdminMenu lists the admin keyboard rows in display order.
func AdminMenu() [][]string {
	return [][]string{
		{BtnCreateList},
		{BtnShowCurrent},
		{BtnSetStatus},
		{BtnDeleteItem},
		{BtnFinalize},
		{BtnCloseShift},
		{BtnFullReset},
	}
}

func renderOr(d *Document, final bool, fallback string) string {
	if rendered := Render(d, final); rendered != "" {
		return rendered
	}
	return fallback
}
