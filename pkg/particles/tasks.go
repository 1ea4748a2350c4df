package particles

//Task is a callback scheduled to run a number of ticks in the future
type Task struct {
	Name       string
	F          TaskFunc
	Delay      int
	originTick int
}

func (t Task) String() string {
	return t.Name
}

type TaskFunc func(e *Engine)

//runTasks runs every due task in the order it was added
func (e *Engine) runTasks() {
	if len(e.tasks) == 0 {
		return
	}
	next := e.tasks[:0]
	var due []Task
	for _, t := range e.tasks {
		if t.Delay <= 0 {
			due = append(due, t)
			continue
		}
		t.Delay--
		next = append(next, t)
	}
	e.tasks = next
	for _, t := range due {
		e.Log.Debugf("[%v] executing task %v, originated from tick %v", e.Frame(), t.Name, t.originTick)
		t.F(e)
	}
}

//AddTask schedules f to run after delay ticks; a delay of 0 runs on the next tick
func (e *Engine) AddTask(f TaskFunc, name string, delay int) {
	e.tasks = append(e.tasks, Task{
		Name:       name,
		F:          f,
		Delay:      delay,
		originTick: e.T,
	})
	e.Log.Debugf("[%v] task added: %v (delay %v)", e.Frame(), name, delay)
}

//PendingTasks returns the number of tasks still waiting to run
func (e *Engine) PendingTasks() int {
	return len(e.tasks)
}
