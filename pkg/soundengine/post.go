package soundengine

import (
	"fmt"
	"runtime"

	"github.com/justyntemme/akgo/pkg/ak"
	"github.com/justyntemme/akgo/pkg/debug"
	"github.com/justyntemme/akgo/pkg/native"
)

// PostEvent describes one event post. The zero flags subscribe to nothing
// and the zero playing ID lets the engine pick one.
type PostEvent struct {
	obj       ak.GameObjectID
	event     ak.ID
	flags     ak.CallbackType
	playingID ak.PlayingID
}

// NewPostEvent prepares event for the game object obj.
func NewPostEvent(obj ak.GameObjectID, event ak.ID) PostEvent {
	return PostEvent{obj: obj, event: event}
}

// PostEventByName is NewPostEvent with a named event.
func PostEventByName(obj ak.GameObjectID, name string) PostEvent {
	return NewPostEvent(obj, ak.Name(name))
}

// PostEventByID is NewPostEvent with a numeric event ID.
func PostEventByID(obj ak.GameObjectID, id ak.UniqueID) PostEvent {
	return NewPostEvent(obj, ak.Numeric(id))
}

// Flags replaces the callback subscription.
func (p PostEvent) Flags(flags ak.CallbackType) PostEvent {
	p.flags = flags
	return p
}

// AddFlags adds to the callback subscription.
func (p PostEvent) AddFlags(flags ak.CallbackType) PostEvent {
	p.flags |= flags
	return p
}

// PlayingID asks the engine to use id instead of allocating one.
func (p PostEvent) PlayingID(id ak.PlayingID) PostEvent {
	p.playingID = id
	return p
}

// GameObjectID returns the game object the event is posted on.
func (p PostEvent) GameObjectID() ak.GameObjectID { return p.obj }

// EventID returns the event to post.
func (p PostEvent) EventID() ak.ID { return p.event }

// CallbackFlags returns the subscription, without the end of event added by
// PostWithCallback.
func (p PostEvent) CallbackFlags() ak.CallbackType { return p.flags }

// Post sends the event without a callback and returns its playing ID.
func (p PostEvent) Post() (ak.PlayingID, error) {
	return p.post(p.flags, nil, 0)
}

// PostWithCallback sends the event and calls fn for every subscribed
// callback until the end of the event, which is always subscribed. fn runs
// on the engine's audio thread and must not block. A playing ID override
// already carrying a callback is rejected before the engine sees the post.
func (p PostEvent) PostWithCallback(fn CallbackFunc) (ak.PlayingID, error) {
	if fn == nil {
		return p.Post()
	}
	cookie, ok := registerBox(fn, p.playingID)
	if !ok {
		return ak.InvalidPlayingID, fmt.Errorf("soundengine: post event %s: playing ID %d already has a callback: %w", p.event, p.playingID, ak.InvalidParameter)
	}
	id, err := p.post(p.flags|ak.EndOfEvent, trampoline, cookie)
	if err != nil {
		releaseBox(cookie)
		return ak.InvalidPlayingID, err
	}
	bindPlayingID(cookie, id)
	return id, nil
}

func (p PostEvent) post(flags ak.CallbackType, cb native.CallbackFunc, cookie uintptr) (ak.PlayingID, error) {
	e := native.Current()

	var id ak.PlayingID
	if p.event.IsName() {
		name, err := native.CString(p.event.NameValue())
		if err != nil {
			return ak.InvalidPlayingID, fmt.Errorf("soundengine: post event: %w", err)
		}
		id = e.PostEventName(&name[0], p.obj, uint32(flags), cb, cookie, p.playingID)
		runtime.KeepAlive(name)
	} else {
		id = e.PostEventID(p.event.NumericValue(), p.obj, uint32(flags), cb, cookie, p.playingID)
	}

	if id == ak.InvalidPlayingID {
		debug.Warn("soundengine: engine rejected event %s on game object %d", p.event, p.obj)
		return ak.InvalidPlayingID, fmt.Errorf("soundengine: post event %s on game object %d: %w", p.event, p.obj, ak.Fail)
	}
	return id, nil
}
