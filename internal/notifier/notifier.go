package notifier

// Delivery is one artifact upload: the file on disk, its finished
// caption, and an optional forum topic.
type Delivery struct {
	ArtifactPath string
	Caption      string
	ThreadID     string
}

// Notifier defines the interface for delivering artifact notifications
type Notifier interface {
	// Deliver sends the notification for the given delivery
	Deliver(d *Delivery) error
}
