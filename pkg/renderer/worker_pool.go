package renderer

import (
	"image"
	"runtime"
	"sync"
	"time"
)

// ScanlineTask represents one image row to render
type ScanlineTask struct {
	Row int
}

// ScanlineResult contains the result from rendering one row
type ScanlineResult struct {
	Row     int
	Samples int
}

// WorkerPool renders scanlines in parallel. Rows are independent and each
// owns a seed-derived random stream, so the pool needs no locking: workers
// write to non-overlapping rows of the shared image.
type WorkerPool struct {
	raytracer   *Raytracer
	taskQueue   chan ScanlineTask
	resultQueue chan ScanlineResult
	numWorkers  int
	wg          sync.WaitGroup
}

// NewWorkerPool creates a worker pool for the raytracer with the specified
// number of workers (0 = CPU count)
func NewWorkerPool(raytracer *Raytracer, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	return &WorkerPool{
		raytracer:   raytracer,
		taskQueue:   make(chan ScanlineTask, raytracer.height),
		resultQueue: make(chan ScanlineResult, raytracer.height),
		numWorkers:  numWorkers,
	}
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (wp *WorkerPool) run(img *image.RGBA) {
	defer wp.wg.Done()

	for task := range wp.taskQueue {
		samples := wp.raytracer.renderScanline(task.Row, img)
		wp.resultQueue <- ScanlineResult{Row: task.Row, Samples: samples}
	}
}

// Render renders the full image across the pool's workers and returns it
// together with render statistics. Output is identical for any worker count.
func (wp *WorkerPool) Render() (*image.RGBA, RenderStats) {
	rt := wp.raytracer
	img := image.NewRGBA(image.Rect(0, 0, rt.width, rt.height))

	startTime := time.Now()

	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.run(img)
	}

	// Submit rows top to bottom
	for j := rt.height - 1; j >= 0; j-- {
		wp.taskQueue <- ScanlineTask{Row: j}
	}
	close(wp.taskQueue)

	stats := RenderStats{
		TotalPixels: rt.width * rt.height,
		MaxDepth:    rt.config.MaxDepth,
	}
	for remaining := rt.height; remaining > 0; remaining-- {
		result := <-wp.resultQueue
		stats.TotalSamples += result.Samples
		rt.logger.Printf("\rScanlines remaining: %d ", remaining-1)
	}

	wp.wg.Wait()

	stats.ElapsedTime = time.Since(startTime)
	if stats.TotalPixels > 0 {
		stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	}
	return img, stats
}
