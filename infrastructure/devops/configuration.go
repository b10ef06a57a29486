package devops

import (
	"context"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// AppConfig is the deployment configuration kept as a YAML document in SSM
// Parameter Store under "campustime/config". Environment variables override
// individual fields at startup.
type AppConfig struct {
	DSN               string `yaml:"dsn"`
	SigningSecret     string `yaml:"signing_secret"`
	ScheduleWorkbook  string `yaml:"schedule_workbook"`
	ArchiveBucket     string `yaml:"archive_bucket"`
	ReminderFromEmail string `yaml:"reminder_from_email"`
}

var (
	once    sync.Once
	appCfg  *AppConfig
	loadErr error
)

func LoadAppConfig(ctx context.Context) (*AppConfig, error) {
	once.Do(func() {
		paramName := "campustime/config"

		cfg, err := config.LoadDefaultConfig(ctx)
		if err != nil {
			loadErr = fmt.Errorf("load aws config: %w", err)
			return
		}

		client := ssm.NewFromConfig(cfg)

		out, err := client.GetParameter(ctx, &ssm.GetParameterInput{
			Name:           aws.String(paramName),
			WithDecryption: aws.Bool(true),
		})
		if err != nil {
			loadErr = fmt.Errorf("get parameter: %w", err)
			return
		}

		var parsed AppConfig
		if err := yaml.Unmarshal([]byte(*out.Parameter.Value), &parsed); err != nil {
			loadErr = fmt.Errorf("unmarshal yaml: %w", err)
			return
		}

		appCfg = &parsed
	})

	return appCfg, loadErr
}
