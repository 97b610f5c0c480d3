package detect

import "github.com/harrison/conductor/internal/hostapi"

// conflictNotification builds the warning notification shown when a tree
// matches more than one mutually-exclusive layout variant of the same kind.
func conflictNotification(subsystem, message string) hostapi.Notification {
	return hostapi.Notification{
		Type:    hostapi.NotificationWarning,
		Title:   subsystem,
		Message: message,
	}
}
