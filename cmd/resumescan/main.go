package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/zinando/smartapplicant-backend/internal/config"
	"github.com/zinando/smartapplicant-backend/internal/logger"
	"github.com/zinando/smartapplicant-backend/internal/matcher"
	"github.com/zinando/smartapplicant-backend/internal/parser"
	"github.com/zinando/smartapplicant-backend/internal/suggest"
	"github.com/zinando/smartapplicant-backend/internal/types"
	"github.com/zinando/smartapplicant-backend/internal/vocab"
)

// 命令行参数定义
var (
	configPath   = pflag.StringP("config", "c", "", "配置文件路径，为空时查找默认位置")
	resumePath   = pflag.StringP("resume", "r", "", "简历文本文件路径 (必填)")
	jdPath       = pflag.StringP("jd", "j", "", "职位描述文本文件路径 (match命令必填)")
	jobTitle     = pflag.StringP("title", "t", "", "目标职位名称，用于推断职位领域")
	prettyOutput = pflag.Bool("pretty", true, "JSON输出是否缩进")
	genConfig    = pflag.String("gen-config", "", "生成示例配置文件到指定路径后退出")
)

func usage() {
	fmt.Fprintf(os.Stderr, "用法: %s [flags] <command>\n\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "支持的命令:")
	fmt.Fprintln(os.Stderr, "  parse    解析简历文本，输出结构化结果与ATS评分")
	fmt.Fprintln(os.Stderr, "  analyze  解析简历并输出基础分章节分析与改进建议")
	fmt.Fprintln(os.Stderr, "  match    解析简历与职位描述，输出匹配报告")
	fmt.Fprintln(os.Stderr, "")
	pflag.PrintDefaults()
}

func main() {
	pflag.Usage = usage
	pflag.Parse()

	if *genConfig != "" {
		if err := config.CreateSampleConfig(*genConfig); err != nil {
			fmt.Fprintf(os.Stderr, "错误: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("示例配置已写入 %s\n", *genConfig)
		return
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "错误: 加载配置失败: %v\n", err)
		os.Exit(1)
	}
	logger.Init(cfg.Logger)

	command := pflag.Arg(0)
	switch command {
	case "parse":
		handleParseCommand(cfg)
	case "analyze":
		handleAnalyzeCommand(cfg)
	case "match":
		handleMatchCommand(cfg)
	default:
		fmt.Fprintf(os.Stderr, "错误: 未知命令 '%s'。支持的命令: parse, analyze, match\n", command)
		usage()
		os.Exit(1)
	}
}

// newParser 根据配置构造简历解析器。
// 配置了技能数据目录时加载目录中的词表替换内置词表。
func newParser(cfg *config.Config) *parser.ResumeParser {
	opts := []parser.Option{
		parser.WithRegions(cfg.Parser.PrimaryRegion, cfg.Parser.SupportedRegions),
	}
	if cfg.Parser.SkillDataDir != "" {
		opts = append(opts, parser.WithVocabulary(vocab.New(cfg.Parser.SkillDataDir)))
	}
	return parser.NewResumeParser(opts...)
}

func handleParseCommand(cfg *config.Config) {
	text := mustReadText(*resumePath, "--resume")
	parsed := newParser(cfg).Parse(text)
	printJSON(parsed)
}

func handleAnalyzeCommand(cfg *config.Config) {
	text := mustReadText(*resumePath, "--resume")
	parsed := newParser(cfg).Parse(text)

	analysis := matcher.SectionalAnalysis(parsed)
	printJSON(struct {
		Resume      *types.ParsedResume     `json:"resume"`
		Analysis    types.SectionalAnalysis `json:"sectional_analysis"`
		Suggestions []string                `json:"suggestions"`
	}{parsed, analysis, suggest.BasicSuggestions(analysis)})
}

func handleMatchCommand(cfg *config.Config) {
	resumeText := mustReadText(*resumePath, "--resume")
	jdText := mustReadText(*jdPath, "--jd")
	printJSON(buildMatchReport(cfg, resumeText, jdText, *jobTitle))
}

// buildMatchReport 解析简历与职位描述并生成匹配报告，
// 报告附带改进建议（未配置文本生成器时使用内置建议）。
func buildMatchReport(cfg *config.Config, resumeText, jdText, title string) *types.MatchReport {
	p := newParser(cfg)
	resume := p.Parse(resumeText)
	jd := p.Parse(jdText)

	report := matcher.NewEngine(cfg.Matcher).Match(resume, jd, resumeText, title)
	advisor := suggest.NewAdvisor(nil)
	report.Suggestions = advisor.ImprovementSuggestions(context.Background(), resumeText, jdText)
	return report
}

// mustReadText 读取文本文件并做Unicode规范化，失败时直接退出
func mustReadText(path, flagName string) string {
	if strings.TrimSpace(path) == "" {
		fmt.Fprintf(os.Stderr, "错误: 缺少必填参数 %s\n", flagName)
		usage()
		os.Exit(1)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "错误: 读取文件失败: %v\n", err)
		os.Exit(1)
	}
	return string(data)
}

func printJSON(v interface{}) {
	var (
		data []byte
		err  error
	)
	if *prettyOutput {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		logger.Fatal().Err(err).Msg("序列化输出失败")
	}
	fmt.Println(string(data))
}
