package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"yudhaprm/skillorbit/internal/config"
	"yudhaprm/skillorbit/internal/services"
)

func main() {
	log.Println("🚀 Starting coaching guide ingestion...")

	// Load configuration
	cfg := config.Load()

	// Initialize services
	geminiService, err := services.NewGeminiService(cfg.Gemini.APIKey)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini: %v", err)
	}

	guideStore, err := services.NewGuideStore(
		cfg.Qdrant.URL,
		cfg.Qdrant.APIKey,
		cfg.Qdrant.Collection,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant: %v", err)
	}

	if err := guideStore.InitCollection(); err != nil {
		log.Fatalf("❌ Failed to initialize collection: %v", err)
	}

	pdfParser := services.NewPDFParserService()
	chunker := services.NewTextChunker()

	ctx := context.Background()

	guides := []struct {
		Path  string
		Topic string
		Name  string
	}{
		{
			Path:  "./guides/behavioral_interviews.pdf",
			Topic: "behavioral",
			Name:  "Behavioral Interview Playbook",
		},
		{
			Path:  "./guides/system_design_primer.pdf",
			Topic: "system-design",
			Name:  "System Design Interview Primer",
		},
		{
			Path:  "./guides/coding_interview_patterns.pdf",
			Topic: "coding",
			Name:  "Coding Interview Patterns",
		},
		{
			Path:  "./guides/salary_negotiation.pdf",
			Topic: "negotiation",
			Name:  "Salary Negotiation Guide",
		},
	}

	successCount := 0
	failCount := 0

	for _, guide := range guides {
		log.Printf("\n📄 Processing: %s", guide.Name)
		log.Printf("   Path: %s", guide.Path)
		log.Printf("   Topic: %s", guide.Topic)

		// Check if file exists
		if _, err := os.Stat(guide.Path); os.IsNotExist(err) {
			log.Printf("   ⚠️  File not found, skipping...")
			failCount++
			continue
		}

		// Extract text from PDF
		log.Printf("   📖 Extracting text...")
		content, err := pdfParser.ExtractText(guide.Path)
		if err != nil {
			log.Printf("   ❌ Failed to extract text: %v", err)
			failCount++
			continue
		}

		log.Printf("   ✅ Extracted %d pages, %d characters", content.PageCount, len(content.Text))

		// Chunk the text
		log.Printf("   ✂️  Chunking text...")
		chunks := chunker.ChunkText(content.Text, 1000, 200)
		log.Printf("   ✅ Created %d chunks", len(chunks))

		// Embed and store each chunk
		log.Printf("   🔄 Embedding and storing chunks...")
		for i, chunk := range chunks {
			embedding, err := geminiService.GenerateEmbedding(ctx, chunk)
			if err != nil {
				log.Printf("   ❌ Failed to generate embedding for chunk %d: %v", i+1, err)
				continue
			}

			guideID := fmt.Sprintf("%s_chunk_%d", guide.Topic, i)

			err = guideStore.UpsertGuideChunk(ctx, guideID, guide.Topic, chunk, embedding)
			if err != nil {
				log.Printf("   ❌ Failed to store chunk %d: %v", i+1, err)
				continue
			}

			if (i+1)%5 == 0 || i == len(chunks)-1 {
				log.Printf("   📊 Progress: %d/%d chunks stored", i+1, len(chunks))
			}
		}

		log.Printf("   ✅ Successfully ingested %s", guide.Name)
		successCount++
	}

	// Summary
	log.Println("\n" + strings.Repeat("=", 60))
	log.Printf("📊 Ingestion Summary:")
	log.Printf("   ✅ Successful: %d guides", successCount)
	log.Printf("   ❌ Failed: %d guides", failCount)
	log.Println(strings.Repeat("=", 60))

	if failCount > 0 {
		log.Println("⚠️  Some guides failed to ingest. Please check the logs above.")
		os.Exit(1)
	}

	log.Println("✅ All guides ingested successfully!")
}
