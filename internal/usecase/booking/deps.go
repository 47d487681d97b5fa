package booking

import (
	"github.com/GreenvaleServices/landscape-platform/internal/audit"
	"github.com/GreenvaleServices/landscape-platform/internal/notify"
)

// Side channels are injected as narrow interfaces. Both are best effort:
// the use cases dispatch and move on.
type AuditDispatcher interface {
	Dispatch(ev audit.Event)
}

type NotifyDispatcher interface {
	Dispatch(ev notify.Event)
}
