//Package chart renders dispatched points into an interactive 3d scatter page
package chart

import (
	"fmt"
	"io"
	"sync"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/srliao/particles/pkg/particles"
)

//Chart is a Dispatcher that accumulates absolute point positions, one series per
//actor, style and effect, for the preview command
type Chart struct {
	Title string

	mu     sync.Mutex
	order  []string
	series map[string][]opts.Chart3DData
	total  int
}

func New(title string) *Chart {
	return &Chart{
		Title:  title,
		series: make(map[string][]opts.Chart3DData),
	}
}

func (c *Chart) Display(a *particles.Actor, cfg *particles.EffectConfig, origin particles.Vec, pts []particles.Point) {
	key := fmt.Sprintf("%v/%v/%v", a.Name, cfg.Style.Name(), cfg.Effect)
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.series[key]; !ok {
		c.order = append(c.order, key)
	}
	for _, p := range pts {
		v := p.At(origin)
		c.series[key] = append(c.series[key], opts.Chart3DData{
			Value: []interface{}{v.X, v.Z, v.Y},
		})
	}
	c.total += len(pts)
}

//Total returns the number of points collected
func (c *Chart) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total
}

//Series returns the series names in the order they first appeared
func (c *Chart) Series() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.order...)
}

//Render writes the html page. Y is up in the world but echarts puts z up, so the
//axes are swapped on the way in.
func (c *Chart) Render(w io.Writer) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := charts.NewScatter3D()
	s.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    c.Title,
			Subtitle: fmt.Sprintf("%v points", c.total),
		}),
	)
	for _, k := range c.order {
		s.AddSeries(k, c.series[k])
	}
	return s.Render(w)
}
