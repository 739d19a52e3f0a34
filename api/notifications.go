package api

import (
	"context"
	"net/url"
)

// ListNotifications lists the signed-in user's notifications. A 404 from
// the collection is treated as an empty list: not every deployment of the
// backend ships the notifications module.
func (c *Client) ListNotifications(ctx context.Context) ([]Notification, error) {
	var notifications []Notification
	if err := c.get(ctx, "/api/v1/notifications", nil, &notifications); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return notifications, nil
}

// MarkNotificationRead marks one notification as read. A 404 is absorbed
// for the same reason as ListNotifications.
func (c *Client) MarkNotificationRead(ctx context.Context, id string) error {
	payload := struct {
		Read bool `json:"read"`
	}{Read: true}

	err := c.patch(ctx, "/api/v1/notifications/"+url.PathEscape(id), payload, nil)
	if IsNotFound(err) {
		return nil
	}
	return err
}

// CreateNotification sends a notification to a single user.
func (c *Client) CreateNotification(ctx context.Context, create NotificationCreate) (*Notification, error) {
	var notification Notification
	if err := c.post(ctx, "/api/v1/notifications", create, &notification); err != nil {
		return nil, err
	}
	return &notification, nil
}

// CreateBulkNotification sends a notification to a role or a user list.
func (c *Client) CreateBulkNotification(ctx context.Context, create NotificationBulkCreate) ([]Notification, error) {
	var notifications []Notification
	if err := c.post(ctx, "/api/v1/notifications/bulk", create, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}
