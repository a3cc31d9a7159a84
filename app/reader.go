package app

import (
	"sync/atomic"

	"github.com/coschain/creatorfund-go/common/constants"
	"github.com/coschain/creatorfund-go/prototype"
	lru "github.com/hashicorp/golang-lru"
)

// PostView is the read model of a post.
type PostView struct {
	Address   prototype.Address `json:"address"`
	Author    prototype.Address `json:"author"`
	Title     string            `json:"title"`
	Content   string            `json:"content"`
	UpVotes   uint64            `json:"up_votes"`
	DownVotes uint64            `json:"down_votes"`
	Rewarded  bool              `json:"rewarded"`
	Created   int64             `json:"created"`
}

// PostReader serves post lookups from an LRU cache.
// Entries are dropped whenever the controller reports a change to the post.
type PostReader struct {
	ctrl  *Controller
	cache *lru.Cache
	// bumped on every eviction, a load that raced with one is not cached
	generation atomic.Uint64
}

func NewPostReader(ctrl *Controller, size int) (*PostReader, error) {
	if size <= 0 {
		size = constants.PostCacheSize
	}
	cache, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	r := &PostReader{ctrl: ctrl, cache: cache}
	bus := ctrl.Bus()
	if err = bus.Subscribe(constants.NoticeVoteCast, r.onVoteCast); err != nil {
		return nil, err
	}
	if err = bus.Subscribe(constants.NoticeRewardPaid, r.onRewardPaid); err != nil {
		return nil, err
	}
	return r, nil
}

// Close detaches the reader from the controller's notifications.
func (r *PostReader) Close() {
	bus := r.ctrl.Bus()
	_ = bus.Unsubscribe(constants.NoticeVoteCast, r.onVoteCast)
	_ = bus.Unsubscribe(constants.NoticeRewardPaid, r.onRewardPaid)
	r.cache.Purge()
}

func (r *PostReader) Post(post prototype.Address) (*PostView, error) {
	if v, ok := r.cache.Get(post); ok {
		r.ctrl.metrics.cacheHit(true)
		view := *v.(*PostView)
		return &view, nil
	}
	r.ctrl.metrics.cacheHit(false)

	gen := r.generation.Load()
	rec, err := r.ctrl.GetPost(post)
	if err != nil {
		return nil, err
	}
	view := &PostView{
		Address:   post,
		Author:    prototype.BytesToAddress(rec.Author),
		Title:     rec.Title,
		Content:   rec.Content,
		UpVotes:   rec.UpVotes,
		DownVotes: rec.DownVotes,
		Rewarded:  rec.Rewarded,
		Created:   rec.Created,
	}
	if r.generation.Load() == gen {
		cached := *view
		r.cache.Add(post, &cached)
	}
	return view, nil
}

func (r *PostReader) evict(post prototype.Address) {
	r.generation.Add(1)
	r.cache.Remove(post)
}

func (r *PostReader) onVoteCast(tally prototype.Tally) {
	r.evict(tally.Post)
}

func (r *PostReader) onRewardPaid(post prototype.Address, receipt prototype.TransferReceipt) {
	r.evict(post)
}
