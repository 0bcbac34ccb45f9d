// Package scanner 提供并发扫描调度能力。
// 该层负责根路径校验、目录遍历、排除过滤、任务分发、并发执行和结果聚合，
// 不负责语法解析细节。
package scanner

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"sizelint/internal/analysis"
	"sizelint/internal/languages"
	"sizelint/internal/model"
)

// Options 控制一次扫描的阈值、排行长度、并发度与排除规则。
// Exclude 为 nil 时使用默认排除规则，显式空列表表示不排除任何路径。
type Options struct {
	Limits  model.Limits
	TopN    int
	Workers int
	Exclude []string
}

// Service 是扫描服务对象。
type Service struct {
	registry *languages.Registry
	limits   model.Limits
	topN     int
	workers  int
	excluder *Excluder
}

// scanTask 表示一个待分析文件任务。
// index 记录发现顺序，用于保证输出次序与运行次数无关。
type scanTask struct {
	index        int
	absolutePath string
	displayPath  string
	profile      *languages.Profile
}

// workerResult 表示 worker 的执行产物。
// 每个任务恰好产出一条文件记录，读取失败时记录为零统计值并附带告警。
type workerResult struct {
	index   int
	record  model.FileRecord
	warning *model.ScanWarning
}

// scanRoot 是完成校验后的根路径。
type scanRoot struct {
	display  string
	absolute string
	isDir    bool
}

// NewService 创建扫描服务，未设置的选项回落到默认值。
func NewService(registry *languages.Registry, opts Options) *Service {
	limits := model.DefaultLimits()
	if opts.Limits.MaxFileCodeLines > 0 {
		limits.MaxFileCodeLines = opts.Limits.MaxFileCodeLines
	}
	if opts.Limits.MaxFunctionCodeLines > 0 {
		limits.MaxFunctionCodeLines = opts.Limits.MaxFunctionCodeLines
	}

	topN := opts.TopN
	if topN <= 0 {
		topN = model.DefaultTopN
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	rules := opts.Exclude
	if rules == nil {
		rules = DefaultExcludeRules()
	}

	return &Service{
		registry: registry,
		limits:   limits,
		topN:     topN,
		workers:  workers,
		excluder: NewExcluder(rules),
	}
}

// Scan 扫描一组根路径并产出完整汇总。
// 所有根路径先行校验，任何一个不存在都会在扫描开始前报错；
// 对同一棵未变更的目录树重复调用，返回的汇总内容完全一致。
func (s *Service) Scan(roots []string) (model.ScanSummary, error) {
	summary := model.ScanSummary{
		Limits: s.limits,
		TopN:   s.topN,
	}

	if len(roots) == 0 {
		return summary, errors.New("no scan roots given")
	}

	validated := make([]scanRoot, 0, len(roots))
	for _, root := range roots {
		trimmedRoot := strings.TrimSpace(root)
		if trimmedRoot == "" {
			return summary, errors.New("scan root is empty")
		}

		absoluteRoot, err := filepath.Abs(trimmedRoot)
		if err != nil {
			return summary, fmt.Errorf("resolve absolute path: %w", err)
		}

		info, err := os.Stat(absoluteRoot)
		if err != nil {
			return summary, fmt.Errorf("stat root %s: %w", trimmedRoot, err)
		}

		display := filepath.ToSlash(filepath.Clean(trimmedRoot))
		validated = append(validated, scanRoot{
			display:  display,
			absolute: absoluteRoot,
			isDir:    info.IsDir(),
		})
		summary.Roots = append(summary.Roots, display)
	}

	tasks := make(chan scanTask, s.workers*4)
	results := make(chan workerResult, s.workers*4)
	walkErrChan := make(chan error, 1)

	var workerGroup sync.WaitGroup
	for i := 0; i < s.workers; i++ {
		workerGroup.Add(1)
		go func() {
			defer workerGroup.Done()
			s.runWorker(tasks, results)
		}()
	}

	go func() {
		defer close(tasks)
		next := 0
		for _, root := range validated {
			var err error
			if root.isDir {
				err = s.enqueueDirectoryTasks(root, tasks, &next)
			} else {
				err = s.enqueueSingleFileTask(root, tasks, &next)
			}
			if err != nil {
				walkErrChan <- err
				return
			}
		}
		walkErrChan <- nil
	}()

	go func() {
		workerGroup.Wait()
		close(results)
	}()

	collected := make([]workerResult, 0)
	for item := range results {
		collected = append(collected, item)
	}

	if walkErr := <-walkErrChan; walkErr != nil {
		return summary, walkErr
	}

	sort.Slice(collected, func(i int, j int) bool {
		return collected[i].index < collected[j].index
	})

	summary.Files = make([]model.FileRecord, 0, len(collected))
	summary.Warnings = make([]model.ScanWarning, 0)
	for _, item := range collected {
		summary.Files = append(summary.Files, item.record)
		if item.warning != nil {
			summary.Warnings = append(summary.Warnings, *item.warning)
		}
	}

	sort.SliceStable(summary.Warnings, func(i int, j int) bool {
		return summary.Warnings[i].Path < summary.Warnings[j].Path
	})

	s.buildSummary(&summary)
	return summary, nil
}

// enqueueDirectoryTasks 遍历目录并把可识别语言文件推入任务队列。
// 展示路径由根路径原样拼接相对路径得到，多根扫描时可据此区分来源；
// 命中排除规则的目录整体剪枝，命中规则的文件直接跳过。
func (s *Service) enqueueDirectoryTasks(root scanRoot, tasks chan<- scanTask, next *int) error {
	return filepath.WalkDir(root.absolute, func(currentPath string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		relativePath, relErr := filepath.Rel(root.absolute, currentPath)
		if relErr != nil {
			relativePath = currentPath
		}
		displayPath := path.Join(root.display, filepath.ToSlash(relativePath))

		if entry.IsDir() {
			if relativePath != "." && s.excluder.MatchDir(displayPath) {
				return fs.SkipDir
			}
			return nil
		}

		if s.excluder.Match(displayPath) {
			return nil
		}

		profile, ok := s.registry.ProfileForFile(currentPath)
		if !ok {
			return nil
		}

		tasks <- scanTask{
			index:        *next,
			absolutePath: currentPath,
			displayPath:  displayPath,
			profile:      profile,
		}
		*next++
		return nil
	})
}

// enqueueSingleFileTask 在用户给定单文件根路径时创建任务。
// 单文件是用户点名要扫的对象，不做排除规则过滤。
func (s *Service) enqueueSingleFileTask(root scanRoot, tasks chan<- scanTask, next *int) error {
	profile, ok := s.registry.ProfileForFile(root.absolute)
	if !ok {
		return fmt.Errorf("unsupported file extension: %s", filepath.Ext(root.absolute))
	}

	tasks <- scanTask{
		index:        *next,
		absolutePath: root.absolute,
		displayPath:  root.display,
		profile:      profile,
	}
	*next++
	return nil
}

// runWorker 读取文件内容并执行两级分析。
// 文件句柄在读取完成后立即释放；读取或解码失败不会中断扫描，
// 该文件以零统计值入账并附带一条告警。
func (s *Service) runWorker(tasks <-chan scanTask, results chan<- workerResult) {
	for task := range tasks {
		content, readErr := os.ReadFile(task.absolutePath)
		if readErr != nil {
			results <- workerResult{
				index:   task.index,
				record:  model.FileRecord{Path: task.displayPath, Language: task.profile.Name},
				warning: &model.ScanWarning{Path: task.displayPath, Reason: readErr.Error()},
			}
			continue
		}

		if !utf8.Valid(content) {
			results <- workerResult{
				index:   task.index,
				record:  model.FileRecord{Path: task.displayPath, Language: task.profile.Name},
				warning: &model.ScanWarning{Path: task.displayPath, Reason: "invalid UTF-8 encoding"},
			}
			continue
		}

		record := analysis.AnalyzeSource(task.profile, task.displayPath, string(content))
		s.applyLimits(&record)
		results <- workerResult{index: task.index, record: record}
	}
}

// applyLimits 对单文件记录执行阈值判定。
// 阈值为排除上界，实测值恰好等于上限不记违规。
func (s *Service) applyLimits(record *model.FileRecord) {
	if record.Metrics.Code > s.limits.MaxFileCodeLines {
		record.Violations = append(record.Violations, model.Violation{
			Kind:     model.ViolationFileTooLarge,
			Path:     record.Path,
			Measured: record.Metrics.Code,
			Limit:    s.limits.MaxFileCodeLines,
		})
	}

	for _, function := range record.Functions {
		if function.CodeLines > s.limits.MaxFunctionCodeLines {
			record.Violations = append(record.Violations, model.Violation{
				Kind:     model.ViolationFunctionTooLarge,
				Path:     record.Path,
				Function: function.Name,
				Line:     function.StartLine,
				Measured: function.CodeLines,
				Limit:    s.limits.MaxFunctionCodeLines,
			})
		}
	}
}

// buildSummary 计算总计信息与 top-N 排行。
// 排行按代码行数降序做稳定排序，行数相同的条目保持发现顺序。
func (s *Service) buildSummary(summary *model.ScanSummary) {
	summary.Total = model.Totals{}
	for _, file := range summary.Files {
		summary.Total.AddFile(file)
	}

	fileRanks := make([]model.FileRank, 0, len(summary.Files))
	functionRanks := make([]model.FunctionRank, 0)
	for _, file := range summary.Files {
		fileRanks = append(fileRanks, model.FileRank{
			Path:      file.Path,
			CodeLines: file.Metrics.Code,
		})
		for _, function := range file.Functions {
			functionRanks = append(functionRanks, model.FunctionRank{
				Path:      file.Path,
				Function:  function.Name,
				StartLine: function.StartLine,
				CodeLines: function.CodeLines,
			})
		}
	}

	sort.SliceStable(fileRanks, func(i int, j int) bool {
		return fileRanks[i].CodeLines > fileRanks[j].CodeLines
	})
	sort.SliceStable(functionRanks, func(i int, j int) bool {
		return functionRanks[i].CodeLines > functionRanks[j].CodeLines
	})

	if len(fileRanks) > s.topN {
		fileRanks = fileRanks[:s.topN]
	}
	if len(functionRanks) > s.topN {
		functionRanks = functionRanks[:s.topN]
	}

	summary.LargestFiles = fileRanks
	summary.LargestFunctions = functionRanks
}
