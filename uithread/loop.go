package uithread

// Loop is a serial executor owning a single goroutine that is marked as the
// owner thread for its whole life. Hosts that have no UI event loop of their
// own can use a Loop as the owner thread holders are confined to.
type Loop struct {
	fns  chan func()
	done chan struct{}
}

// NewLoop starts the loop goroutine and returns the loop.
func NewLoop() *Loop {
	l := &Loop{
		fns:  make(chan func()),
		done: make(chan struct{}),
	}
	go l.run()
	return l
}

func (l *Loop) run() {
	Mark()
	defer close(l.done)
	for fn := range l.fns {
		fn()
	}
}

// Post schedules fn to run on the loop goroutine and returns immediately.
// Functions run in posting order. Post panics after Close.
func (l *Loop) Post(fn func()) {
	l.fns <- fn
}

// Do runs fn on the loop goroutine and waits for it to return.
func (l *Loop) Do(fn func()) {
	ran := make(chan struct{})
	l.fns <- func() {
		defer close(ran)
		fn()
	}
	<-ran
}

// Close stops accepting work and waits for already-posted functions to run.
func (l *Loop) Close() {
	close(l.fns)
	<-l.done
}
