package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"aroma-content-be/internal/bootstrap"
	"aroma-content-be/internal/config"

	"github.com/fatih/color"
	"github.com/google/uuid"
)

// Interactive console session against the generation facade. Every run gets
// its own conversation key so follow-up requests see prior turns.
func main() {
	cfg := config.Load()
	container := bootstrap.NewContainer(cfg)
	defer container.Logger.Sync()

	svc := container.GenerationService
	chatId := uuid.NewString()
	ctx := context.Background()

	color.Cyan("Добро пожаловать в ассистент Aromakiss!")
	fmt.Println("Доступные команды:")
	fmt.Println("1. 'пост: [описание]' - генерация поста")
	fmt.Println("2. 'идеи: [тема]' - генерация идей для постов")
	fmt.Println("3. 'исследование: [тема]' - исследование темы")
	fmt.Println("4. 'выход' - завершить сессию")
	fmt.Println(strings.Repeat("-", 50))

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		color.Yellow("\nВаш запрос: ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		lower := strings.ToLower(input)
		if lower == "выход" || lower == "exit" || lower == "quit" {
			color.Cyan("До свидания!")
			return
		}

		switch {
		case strings.HasPrefix(lower, "пост:"):
			request := strings.TrimSpace(input[len("пост:"):])
			if request == "" {
				color.Red("Пожалуйста, укажите тему поста после 'пост:'")
				continue
			}
			result, err := svc.GeneratePost(ctx, request, svc.ConversationContext(ctx, chatId))
			if err != nil {
				color.Red("Произошла ошибка: %v", err)
				continue
			}
			color.Green("\nСгенерированный пост:")
			fmt.Println(result)

		case strings.HasPrefix(lower, "идеи:"):
			theme := strings.TrimSpace(input[len("идеи:"):])
			result, err := svc.GenerateIdeas(ctx, theme, svc.ConversationContext(ctx, chatId))
			if err != nil {
				color.Red("Произошла ошибка: %v", err)
				continue
			}
			color.Green("\nИдеи для постов:")
			fmt.Println(result)

		case strings.HasPrefix(lower, "исследование:"):
			topic := strings.TrimSpace(input[len("исследование:"):])
			if topic == "" {
				color.Red("Пожалуйста, укажите тему исследования после 'исследование:'")
				continue
			}
			result, err := svc.ResearchTopic(ctx, topic, svc.ConversationContext(ctx, chatId))
			if err != nil {
				color.Red("Произошла ошибка: %v", err)
				continue
			}
			color.Green("\nРезультаты исследования:")
			fmt.Println(result)

		default:
			color.Red("Неизвестная команда. Используйте 'пост:', 'идеи:', 'исследование:' или 'выход'")
		}
	}
}
