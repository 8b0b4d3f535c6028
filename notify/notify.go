// Package notify displays desktop notifications when a focus interval ends
package notify

import (
	"sync"

	"github.com/gen2brain/beeep"
)

// Permission is whether notifications may be displayed.
type Permission string

const (
	// PermissionDefault means the user has not decided yet.
	PermissionDefault Permission = "default"
	PermissionGranted Permission = "granted"
	PermissionDenied  Permission = "denied"
)

// Desktop sends notifications through the operating system's notification
// service.
type Desktop struct {
	mu         sync.Mutex
	permission Permission
	allow      bool
	icon       string
	send       func(title, body, icon string) error
}

// NewDesktop returns a desktop notifier. The permission starts undetermined
// and resolves to granted on the first request when allow is true.
func NewDesktop(allow bool, icon string) *Desktop {
	return &Desktop{
		permission: PermissionDefault,
		allow:      allow,
		icon:       icon,
		send:       beeep.Notify,
	}
}

func (d *Desktop) Permission() Permission {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.permission
}

// RequestPermission resolves an undetermined permission. A permission that
// was already decided is returned unchanged.
func (d *Desktop) RequestPermission() (Permission, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.permission != PermissionDefault {
		return d.permission, nil
	}

	if d.allow {
		d.permission = PermissionGranted
	} else {
		d.permission = PermissionDenied
	}

	return d.permission, nil
}

// Notify displays a notification. It fails with errPermission unless the
// permission has been granted.
func (d *Desktop) Notify(title, body string) error {
	if d.Permission() != PermissionGranted {
		return errPermission
	}

	err := d.send(title, body, d.icon)
	if err != nil {
		return errNotify.Wrap(err)
	}

	return nil
}
