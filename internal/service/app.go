package service

import (
	"github.com/sirupsen/logrus"
)

type IAppService interface {
	Endor() IEndorService
}

type appService struct {
	logger       *logrus.Logger
	endorService IEndorService
}

func NewAppService(l *logrus.Logger, e IEndorService) IAppService {
	return &appService{
		logger:       l,
		endorService: e,
	}
}

func (as *appService) Endor() IEndorService {
	return as.endorService
}
