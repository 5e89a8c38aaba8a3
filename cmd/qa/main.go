package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"qa/internal/classifier"
	"qa/internal/config"
	"qa/internal/domain"
	"qa/internal/extractor"
	"qa/internal/index/memory"
	"qa/internal/index/sqlite"
	"qa/internal/parser"
	"qa/internal/pipeline"
	"qa/internal/retriever"
	"qa/internal/search"
	"qa/internal/tui"
)

func main() {
	_ = godotenv.Load()

	var (
		cfgPath     string
		train       bool
		classify    bool
		interactive bool
	)
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/qa/config.yaml if not provided)")
	flag.BoolVar(&train, "train", false, "Train the question classifier and write the model artifact")
	flag.BoolVar(&classify, "classify", false, "Only classify the given questions, no answering")
	flag.BoolVar(&interactive, "interactive", false, "Interactive question prompt")
	flag.Parse()
	questions := flag.Args()

	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	categories := domain.Categories()
	bayes := classifier.NewBayes(cfg.Classifier.MinConfidence, domain.CategoryOther)

	switch {
	case train:
		runTrain(cfg, categories, bayes)
	case classify:
		runClassify(cfg, categories, bayes, questions)
	default:
		if len(questions) == 0 && !interactive {
			printUsage()
			os.Exit(1)
		}
		runAnswer(cfg, categories, bayes, questions, interactive)
	}
}

func runTrain(cfg *config.AppConfig, categories []domain.Category, bayes *classifier.Bayes) {
	examples, err := classifier.LoadTrainingExamples(cfg.TrainingPath, categories)
	if err != nil {
		log.Fatalf("loading training corpus: %v", err)
	}
	model, err := bayes.Train(categories, examples)
	if err != nil {
		log.Fatalf("training classifier: %v", err)
	}
	if err := classifier.SaveModel(cfg.ModelPath, model); err != nil {
		log.Fatalf("saving model: %v", err)
	}
	fmt.Printf("Trained on %d examples across %d categories (%d distinct tokens)\n",
		model.TotalDocs, len(model.Categories), model.Vocab)
	for _, cat := range model.Categories {
		fmt.Printf("  %-12s %d examples\n", cat, model.Docs[cat])
	}
	fmt.Printf("Model written to %s\n", cfg.ModelPath)
}

func runClassify(cfg *config.AppConfig, categories []domain.Category, bayes *classifier.Bayes, questions []string) {
	if len(questions) == 0 {
		printUsage()
		os.Exit(1)
	}
	model := loadModel(cfg.ModelPath)
	for _, q := range questions {
		fmt.Printf("\nQ: %q\n", q)
		fmt.Printf("Classified as: %s\n", bayes.Classify(categories, model, q))
	}
}

func runAnswer(cfg *config.AppConfig, categories []domain.Category, bayes *classifier.Bayes, questions []string, interactive bool) {
	model := loadModel(cfg.ModelPath)
	qp := parser.New(categories, bayes, model)
	engine := search.NewEngine(cfg.Search.MaxCandidates)

	var ix domain.Indexer
	var err error
	switch cfg.Index.Type {
	case "memory", "":
		ix = memory.New()
	case "sqlite":
		ix, err = sqlite.Open(cfg.Index.SQLite.Path)
		if err != nil {
			log.Fatalf("opening sqlite index: %v", err)
		}
	default:
		log.Fatalf("unknown index type: %s", cfg.Index.Type)
	}
	defer ix.Close()

	docs := retriever.NewDocuments(0)
	docs.SetIndexer(ix)
	if err := docs.ImportDocuments(cfg.DocumentPath); err != nil {
		log.Fatalf("importing corpus: %v", err)
	}

	passages := retriever.NewPassages(cfg.Passages.SentencesPerPassage, cfg.Passages.OverlapSentences)
	pipe := pipeline.New(qp, engine, docs, passages, extractor.New(), cfg.Results.Limit)

	// Questions given on the command line are answered first, even when
	// the interactive prompt follows.
	if len(questions) > 0 {
		printAnswers(os.Stdout, pipe, questions)
	}

	if interactive {
		count, _ := ix.Count()
		header := fmt.Sprintf("Imported %d document(s) from %s", count, cfg.DocumentPath)
		if _, err := tea.NewProgram(tui.New(pipe, header)).Run(); err != nil {
			log.Fatal(err)
		}
	}
}

// batchAnswerer is the answering subset of the pipeline used for batch
// output.
type batchAnswerer interface {
	AnswerAll(questions []string) [][]domain.ResultInfo
}

func printAnswers(w io.Writer, pipe batchAnswerer, questions []string) {
	for i, results := range pipe.AnswerAll(questions) {
		fmt.Fprintf(w, "\nQ: %q\n", questions[i])
		fmt.Fprintln(w, "A(s):")
		for _, r := range results {
			fmt.Fprintf(w, "[%-5s] %s\n", r.DocumentID, r.Answer)
		}
	}
}

// loadModel reads the persisted classifier model. A missing artifact only
// degrades classification to the default category; a corrupt or
// incompatible artifact is reported distinctly so real corruption is not
// masked.
func loadModel(path string) *domain.ClassifierTrainingInfo {
	model, err := classifier.LoadModel(path)
	switch {
	case err == nil:
		return model
	case errors.Is(err, os.ErrNotExist):
		log.Printf("classifier model %s not found; run -train first", path)
	case errors.Is(err, classifier.ErrIncompatibleModel):
		log.Printf("classifier model %s is incompatible: %v", path, err)
	default:
		log.Printf("classifier model %s unreadable: %v", path, err)
	}
	return nil
}

func printUsage() {
	fmt.Println("Usage: qa [--config=qa.yaml] [options] \"<question1>\" \"<question2>\"...")
	fmt.Println("where possible options include:")
	fmt.Printf("  %-15s %s\n", "-train", "Only train question classifier, no input questions required")
	fmt.Printf("  %-15s %s\n", "-classify", "Only classify questions")
	fmt.Printf("  %-15s %s\n", "-interactive", "Interactive question prompt")
	fmt.Println()
	fmt.Println("Example: qa \"Where is Milan ?\" \"Who developed the Macintosh computer ?\"")
}
