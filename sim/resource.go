// Implements the cashier lanes: single-capacity resources with FIFO queues
// of pending requests.

package sim

// Request is a pending claim on a Resource's single slot. It is created by
// Resource.Request and settles exactly once: granted or cancelled.
type Request struct {
	grant     func()
	granted   bool
	cancelled bool
}

// Granted reports whether the request has been granted the slot.
func (req *Request) Granted() bool {
	return req.granted
}

// Resource models a single service channel (one cashier lane): capacity one,
// a held flag, and a FIFO queue of requests waiting for the slot.
type Resource struct {
	held    bool
	pending []*Request
}

// NewResource creates a free Resource with an empty queue.
func NewResource() *Resource {
	return &Resource{}
}

// Request claims the slot. A claim on a free resource is granted
// synchronously, before Request returns; otherwise it joins the back of the
// FIFO queue and is granted when the slot reaches it.
func (r *Resource) Request(grant func()) *Request {
	req := &Request{grant: grant}
	if !r.held {
		r.held = true
		req.granted = true
		grant()
		return req
	}
	r.pending = append(r.pending, req)
	return req
}

// Cancel withdraws a pending request from the queue. Granted or already
// cancelled requests are left untouched.
func (r *Resource) Cancel(req *Request) {
	if req == nil || req.granted || req.cancelled {
		return
	}
	req.cancelled = true
	for i, p := range r.pending {
		if p == req {
			r.pending = append(r.pending[:i], r.pending[i+1:]...)
			break
		}
	}
}

// Release frees the slot and immediately grants it to the head of the
// queue, if any.
func (r *Resource) Release() {
	if len(r.pending) == 0 {
		r.held = false
		return
	}
	next := r.pending[0]
	r.pending = r.pending[1:]
	next.granted = true
	next.grant()
}

// QueueLen returns the number of pending, not-yet-granted requests. Reading
// it has no side effects; the length changes only through Request, Cancel
// and Release.
func (r *Resource) QueueLen() int {
	return len(r.pending)
}

// Held reports whether the slot is currently occupied.
func (r *Resource) Held() bool {
	return r.held
}

// Pool holds the regular cashier lanes plus the single overflow lane.
type Pool struct {
	Cashiers []*Resource
	Overflow *Resource
}

// NewPool creates numCashiers regular lanes and one overflow lane, all free.
func NewPool(numCashiers int) *Pool {
	cashiers := make([]*Resource, numCashiers)
	for i := range cashiers {
		cashiers[i] = NewResource()
	}
	return &Pool{Cashiers: cashiers, Overflow: NewResource()}
}

// MinQueue returns the regular lane with the shortest queue and that
// queue's length. Ties break toward the lowest lane index.
func (p *Pool) MinQueue() (*Resource, int) {
	best := p.Cashiers[0]
	bestLen := best.QueueLen()
	for _, c := range p.Cashiers[1:] {
		if l := c.QueueLen(); l < bestLen {
			best, bestLen = c, l
		}
	}
	return best, bestLen
}
