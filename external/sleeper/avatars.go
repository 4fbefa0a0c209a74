package sleeper

import (
	"context"
)

// Avatar is an image downloaded from the Sleeper CDN.
type Avatar struct {
	ContentType string
	Data        []byte
}

func (c *Client) AvatarURL(avatarID string) string {
	return c.cdnURL + "/avatars/" + pathEscape(avatarID)
}

func (c *Client) AvatarThumbnailURL(avatarID string) string {
	return c.cdnURL + "/avatars/thumbs/" + pathEscape(avatarID)
}

func (c *Client) GetAvatar(ctx context.Context, avatarID string, thumbnail bool) (Avatar, error) {
	if err := requireID("avatar id", avatarID); err != nil {
		return Avatar{}, err
	}
	target := c.AvatarURL(avatarID)
	if thumbnail {
		target = c.AvatarThumbnailURL(avatarID)
	}
	data, contentType, err := c.doRaw(ctx, target)
	if err != nil {
		return Avatar{}, err
	}
	return Avatar{ContentType: contentType, Data: data}, nil
}
