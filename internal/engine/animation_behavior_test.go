package engine_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/fractalzoom/internal/engine"
	"github.com/san-kum/fractalzoom/internal/fractal"
	"github.com/san-kum/fractalzoom/internal/host"
	"github.com/san-kum/fractalzoom/internal/palette"
)

var _ = Describe("Animation", func() {
	var (
		rec  *host.Recorder
		opts engine.Options
		anim *engine.Animation
	)

	BeforeEach(func() {
		rec = host.NewRecorder()
		rec.Keep = false
		opts = engine.DefaultOptions()
		opts.Width, opts.Height = 32, 16
	})

	JustBeforeEach(func() {
		var err error
		anim, err = engine.New(opts, rec)
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("navigation over many ticks", func() {
		It("keeps the window valid and shrinking", func() {
			prev := anim.State().Window
			for i := 0; i < 150; i++ {
				info := anim.Tick()
				Expect(info.Window.Valid()).To(BeTrue())
				Expect(info.Window.Width()).To(BeNumerically("<", prev.Width()))
				Expect(info.Window.Height()).To(BeNumerically("<", prev.Height()))
				prev = info.Window
			}
		})

		It("never lowers the iteration cap", func() {
			prev := opts.Iterations
			for i := 0; i < 150; i++ {
				info := anim.Tick()
				Expect(info.Cap).To(BeNumerically(">=", prev))
				prev = info.Cap
			}
			Expect(prev).To(Equal(opts.Iterations + int(math.Floor(anim.State().ZoomTime*10))))
		})

		It("bounds the center shift by the zoom-scaled limit", func() {
			initial := opts.Window.Width()
			for i := 0; i < 60; i++ {
				before := anim.State()
				after := anim.Tick()
				limit := opts.ShiftFraction * before.Window.Width() / initial
				Expect(math.Abs(after.Center.Re - before.Center.Re)).To(BeNumerically("<=", limit*(1+1e-12)))
				Expect(math.Abs(after.Center.Im - before.Center.Im)).To(BeNumerically("<=", limit*(1+1e-12)))
			}
		})

		It("is deterministic", func() {
			other, err := engine.New(opts, host.NewRecorder())
			Expect(err).NotTo(HaveOccurred())
			for i := 0; i < 30; i++ {
				a, b := anim.Tick(), other.Tick()
				Expect(a.Center).To(Equal(b.Center))
				Expect(a.Target).To(Equal(b.Target))
			}
			Expect(anim.Field().Equal(other.Field())).To(BeTrue())
		})
	})

	Describe("presentation", func() {
		Context("with the diff presenter", func() {
			It("draws fewer cells than a full redraw once the view settles", func() {
				anim.Tick()
				Expect(rec.Fills).To(Equal(32 * 16))

				total := 0
				for i := 0; i < 20; i++ {
					total += anim.Tick().DrawCalls
				}
				Expect(total).To(BeNumerically("<", 20*32*16))
			})
		})

		Context("with the full presenter", func() {
			BeforeEach(func() {
				opts.Diff = false
			})

			It("draws every cell every tick", func() {
				for i := 0; i < 5; i++ {
					Expect(anim.Tick().DrawCalls).To(Equal(32 * 16))
				}
				Expect(rec.Fills).To(Equal(5 * 32 * 16))
			})
		})

		Context("with the HCL palette", func() {
			BeforeEach(func() {
				opts.Palette = palette.NewHCL()
			})

			It("still finds a target with a positive score", func() {
				info := anim.Tick()
				Expect(info.Target.Score).To(BeNumerically(">", 0))
			})
		})
	})

	Describe("frame gating", func() {
		It("runs one tick per accumulated interval", func() {
			dt := opts.Tick * 0.3
			for i := 0; i < 100; i++ {
				anim.OnFrame(dt)
			}
			Expect(anim.State().Ticks).To(Equal(25))
		})
	})

	Describe("the target", func() {
		It("maps back inside the current window", func() {
			for i := 0; i < 10; i++ {
				info := anim.Tick()
				p := info.Target.Point
				Expect(p.Re).To(BeNumerically(">=", info.Window.MinRe))
				Expect(p.Re).To(BeNumerically("<=", info.Window.MaxRe))
				Expect(p.Im).To(BeNumerically(">=", info.Window.MinIm))
				Expect(p.Im).To(BeNumerically("<=", info.Window.MaxIm))
				Expect(info.Target.Point).To(Equal(info.Window.Map(info.Target.X, info.Target.Y, 32, 16)))
			}
		})
	})
})

var _ = Describe("Options", func() {
	It("rejects a degenerate window", func() {
		opts := engine.DefaultOptions()
		opts.Window = fractal.Window{MinRe: 0, MaxRe: 0, MinIm: 0, MaxIm: 1}
		_, err := engine.New(opts, host.NewRecorder())
		Expect(err).To(MatchError(engine.ErrInvalidWindow))
	})
})
