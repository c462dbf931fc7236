package analyzing

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/vfg2006/shareholder-campaign-api/internal/domain"
	"github.com/vfg2006/shareholder-campaign-api/pkg/utils"
)

// GetShareholdersEngagement monta a série de engajamento da campanha somando
// cliques, emails abertos e resgates, agrupados na granularidade pedida
func (s *Service) GetShareholdersEngagement(campaignID string, days int, grouping domain.TimeGrouping) (*domain.ShareholdersEngagementResult, error) {
	const op = "shareholders_engagement"

	if _, err := s.requireCampaign(op, campaignID); err != nil {
		return nil, err
	}

	if grouping == "" {
		grouping = domain.TimeGroupingWeek
	}
	if days < 1 {
		days = defaultWindowDays
	}

	totalReached, err := s.shareHolderRepo.CountByCampaign(campaignID)
	if err != nil {
		return nil, s.aggErr(op, campaignID, err)
	}

	since := time.Now().AddDate(0, 0, -days)

	timestamps, err := s.eventRepo.ListEngagementTimes(campaignID, since)
	if err != nil {
		return nil, s.aggErr(op, campaignID, err)
	}

	result := &domain.ShareholdersEngagementResult{
		TotalReached:          totalReached,
		TotalReachedFormatted: utils.FormatLargeNumber(float64(totalReached)),
		EngagementOverTime: domain.EngagementSeries{
			Data: []domain.EngagementPoint{},
		},
	}

	if len(timestamps) == 0 {
		return result, nil
	}

	// Agrupa pelo dia do mês, semana do mês ou mês do evento
	counts := make(map[int]int)
	for _, ts := range timestamps {
		var bucket int
		switch grouping {
		case domain.TimeGroupingDay:
			bucket = ts.Day()
		case domain.TimeGroupingMonth:
			bucket = int(ts.Month())
		default:
			bucket = 1 + (ts.Day()-1)/7
		}
		counts[bucket]++
	}

	buckets := make([]int, 0, len(counts))
	for bucket := range counts {
		buckets = append(buckets, bucket)
	}
	sort.Ints(buckets)

	var sum int
	highest := counts[buckets[0]]
	lowest := counts[buckets[0]]

	data := make([]domain.EngagementPoint, 0, len(buckets))
	for i, bucket := range buckets {
		count := counts[bucket]
		sum += count
		if count > highest {
			highest = count
		}
		if count < lowest {
			lowest = count
		}

		data = append(data, domain.EngagementPoint{
			DateRange:       engagementLabel(grouping, bucket, buckets, i),
			EngagementCount: count,
		})
	}

	result.EngagementOverTime = domain.EngagementSeries{
		Data:         data,
		HighestValue: highest,
		LowestValue:  lowest,
		Average:      utils.RoundWithOneDecimalPlace(float64(sum) / float64(len(buckets))),
	}

	return result, nil
}

// engagementLabel formata o rótulo de um segmento da série. No agrupamento
// diário cada rótulo vai até o próximo dia com eventos, e o último fica só
// com o próprio dia.
func engagementLabel(grouping domain.TimeGrouping, bucket int, buckets []int, index int) string {
	switch grouping {
	case domain.TimeGroupingDay:
		day := utils.FormatValidDay(bucket)
		if index < len(buckets)-1 {
			return fmt.Sprintf("%s-%s", day, utils.FormatValidDay(buckets[index+1]))
		}
		return day

	case domain.TimeGroupingMonth:
		month := bucket
		if month < 1 {
			month = 1
		}
		if month > 12 {
			month = 12
		}
		return fmt.Sprintf("%02d", month)
	}

	week := bucket
	if week < 1 {
		week = 1
	}
	if week > 5 {
		week = 5
	}

	return fmt.Sprintf("%s-%s", utils.FormatValidDay((week-1)*7+1), utils.FormatValidDay(week*7))
}

// GetShareholderDemographics cruza faixa etária e corretora para os acionistas
// da campanha. Todas as corretoras aparecem na resposta, mesmo sem toques.
func (s *Service) GetShareholderDemographics(campaignID string, ageGroup domain.AgeGroup) (*domain.ShareholderDemographicsResult, error) {
	const op = "shareholder_demographics"

	if ageGroup == "" {
		ageGroup = domain.AgeGroupAll
	}

	campaign, err := s.requireCampaign(op, campaignID)
	if err != nil {
		return nil, err
	}

	shareholders, err := s.shareHolderRepo.ListByCampaign(campaignID)
	if err != nil {
		return nil, s.aggErr(op, campaignID, err)
	}

	brokers, err := s.brokerRepo.ListAll()
	if err != nil {
		return nil, s.aggErr(op, campaignID, err)
	}

	type brokerEntry struct {
		name      string
		ageGroups map[domain.AgeGroup]*domain.AgeGroupStats
	}

	entries := make(map[string]*brokerEntry, len(brokers))
	for _, broker := range brokers {
		groups := make(map[domain.AgeGroup]*domain.AgeGroupStats)
		for _, group := range domain.AgeGroups() {
			groups[group] = &domain.AgeGroupStats{ConcentrationLevel: domain.ConcentrationLow}
		}
		entries[broker.ID] = &brokerEntry{name: broker.Name, ageGroups: groups}
	}

	for _, shareholder := range shareholders {
		group, ok := domain.AgeGroupFor(shareholder.Age)
		if !ok {
			continue
		}
		if ageGroup != domain.AgeGroupAll && group != ageGroup {
			continue
		}

		for _, share := range shareholder.Shares {
			entry, ok := entries[share.BrokerID]
			if !ok {
				continue
			}

			stats := entry.ageGroups[group]
			stats.Count++
			stats.TotalShares++
			stats.ConcentrationLevel = domain.ConcentrationLevelFor(stats.TotalShares)
		}
	}

	brokerData := make([]domain.BrokerDemographics, 0, len(brokers))
	for _, broker := range brokers {
		entry := entries[broker.ID]

		groups := make(map[domain.AgeGroup]domain.AgeGroupStats)
		if ageGroup != domain.AgeGroupAll {
			groups[ageGroup] = *entry.ageGroups[ageGroup]
		} else {
			for group, stats := range entry.ageGroups {
				groups[group] = *stats
			}
		}

		brokerData = append(brokerData, domain.BrokerDemographics{
			Broker:    entry.name,
			AgeGroups: groups,
		})
	}

	groupList := domain.AgeGroups()
	if ageGroup != domain.AgeGroupAll {
		groupList = []domain.AgeGroup{ageGroup}
	}

	return &domain.ShareholderDemographicsResult{
		Campaign: domain.CampaignRef{ID: campaign.ID, Title: campaign.Title},
		Demographics: domain.Demographics{
			Brokers:   brokerData,
			AgeGroups: groupList,
		},
	}, nil
}

// GetCampaignRegionalConcentration agrupa os acionistas de uma campanha por
// país e por região. O filtro de região descarta o acionista das duas
// agregações, mas o denominador continua sendo o total sem filtro.
func (s *Service) GetCampaignRegionalConcentration(campaignID, region string) (*domain.CampaignRegionalResult, error) {
	const op = "regional_concentration"

	campaign, err := s.requireCampaign(op, campaignID)
	if err != nil {
		return nil, err
	}

	shareholders, err := s.shareHolderRepo.ListByCampaign(campaignID)
	if err != nil {
		return nil, s.aggErr(op, campaignID, err)
	}

	return &domain.CampaignRegionalResult{
		Campaign:      domain.CampaignRef{ID: campaign.ID, Title: campaign.Title},
		Concentration: concentrationSet(shareholders, region, len(shareholders)),
	}, nil
}

// GetAllCampaignsRegionalConcentration agrega a concentração regional de
// todas as campanhas criadas na janela, campanha a campanha e no total
func (s *Service) GetAllCampaignsRegionalConcentration(region string, days int) (*domain.AllCampaignsRegionalResult, error) {
	const op = "regional_concentration"

	if days < 1 {
		days = defaultWindowDays
	}

	end := time.Now()
	start := end.AddDate(0, 0, -days)

	campaigns, err := s.campaignRepo.ListCreatedBetween(start, end, nil)
	if err != nil {
		return nil, s.aggErr(op, "", err)
	}

	result := &domain.AllCampaignsRegionalResult{
		Days:      days,
		Campaigns: []domain.CampaignRegionalEntry{},
		TotalConcentration: domain.ConcentrationSet{
			Countries: []domain.RegionalConcentration{},
			Regions:   []domain.RegionalConcentration{},
		},
	}

	if len(campaigns) == 0 {
		return result, nil
	}

	var all []*domain.ShareHolder
	for _, campaign := range campaigns {
		shareholders, err := s.shareHolderRepo.ListByCampaign(campaign.ID)
		if err != nil {
			return nil, s.aggErr(op, campaign.ID, err)
		}

		all = append(all, shareholders...)

		result.Campaigns = append(result.Campaigns, domain.CampaignRegionalEntry{
			ID:            campaign.ID,
			Title:         campaign.Title,
			Concentration: concentrationSet(shareholders, region, len(shareholders)),
		})
	}

	result.TotalConcentration = concentrationSet(all, region, len(all))

	return result, nil
}

// concentrationSet monta as agregações por país e por região de um conjunto
// de acionistas, com percentuais inteiros sobre o total informado
func concentrationSet(shareholders []*domain.ShareHolder, region string, total int) domain.ConcentrationSet {
	countryCounts := make(map[string]int)
	regionCounts := make(map[string]int)

	for _, shareholder := range shareholders {
		if region != "" && shareholder.Region != region {
			continue
		}

		countryCounts[shareholder.Country]++
		regionCounts[shareholder.Region]++
	}

	return domain.ConcentrationSet{
		Countries: concentrationEntries(countryCounts, total),
		Regions:   concentrationEntries(regionCounts, total),
	}
}

func concentrationEntries(counts map[string]int, total int) []domain.RegionalConcentration {
	entries := make([]domain.RegionalConcentration, 0, len(counts))
	for name, count := range counts {
		var percentage int
		if total > 0 {
			percentage = int(math.Round(float64(count) / float64(total) * 100))
		}

		entries = append(entries, domain.RegionalConcentration{
			Name:             name,
			ShareholderCount: count,
			Percentage:       percentage,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Percentage != entries[j].Percentage {
			return entries[i].Percentage > entries[j].Percentage
		}
		return entries[i].Name < entries[j].Name
	})

	return entries
}
