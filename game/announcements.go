package game

import "github.com/milk9111/starblaster/common"

// announcementFade is how long before expiry a message starts fading out.
const announcementFade = 1000.0

// Announcement is a transient on-screen message. Alpha runs from 1 down to 0
// over the final second.
type Announcement struct {
	Message   string
	Duration  float64
	Remaining float64
	Alpha     float32
}

type announcement struct {
	message   string
	duration  float64
	expiresAt float64
}

type announcementBoard struct {
	items           []announcement
	defaultDuration float64
}

func (b *announcementBoard) add(message string, duration, now float64) {
	if message == "" {
		return
	}
	if duration <= 0 {
		duration = b.defaultDuration
	}
	b.items = append(b.items, announcement{message: message, duration: duration, expiresAt: now + duration})
}

// prune drops expired messages.
func (b *announcementBoard) prune(now float64) {
	kept := b.items[:0]
	for _, a := range b.items {
		if now < a.expiresAt {
			kept = append(kept, a)
		}
	}
	b.items = kept
}

func (b *announcementBoard) active(now float64) []Announcement {
	out := make([]Announcement, 0, len(b.items))
	for _, a := range b.items {
		remaining := a.expiresAt - now
		if remaining <= 0 {
			continue
		}
		alpha := float32(1)
		if remaining < announcementFade {
			alpha = common.Lerp(0, 1, float32(remaining/announcementFade))
		}
		out = append(out, Announcement{Message: a.message, Duration: a.duration, Remaining: remaining, Alpha: alpha})
	}
	return out
}

func (b *announcementBoard) clear() {
	b.items = nil
}
